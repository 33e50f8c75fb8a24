package kubectl

import (
	"context"
	"fmt"

	v1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// UpsertSecret creates or replaces an Opaque secret. Deploy uses this to
// publish the upstream database credentials the chart's workloads read; this
// tool only ever writes the secret, it never reads it back.
func UpsertSecret(data map[string][]byte, name string, namespace string) error {
	ctx := context.Background()
	_, cs, err := GetClientset()
	if err != nil {
		return fmt.Errorf("failed to get clientset: %w", err)
	}

	existing, err := cs.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if k8serrors.IsNotFound(err) {
			secret := &v1.Secret{
				ObjectMeta: metav1.ObjectMeta{
					Name:      name,
					Namespace: namespace,
				},
				Type: v1.SecretTypeOpaque,
				Data: data,
			}

			_, err = cs.CoreV1().Secrets(namespace).Create(ctx, secret, metav1.CreateOptions{})
			if err != nil {
				return fmt.Errorf("failed to create Secret: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get Secret: %w", err)
	}

	existing.Data = data
	_, err = cs.CoreV1().Secrets(namespace).Update(ctx, existing, metav1.UpdateOptions{})
	if err != nil {
		return fmt.Errorf("failed to update Secret: %w", err)
	}

	return nil
}
