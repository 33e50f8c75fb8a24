// Package connect builds the shell commands an operator runs to reach a
// deployed ReadySet instance. Nothing here talks to the cluster; the output
// is text for the operator to copy.
package connect

import (
	"fmt"
	"strings"
)

const (
	// DefaultSecretName is the Secret the chart stores upstream database
	// credentials in, with base64-encoded username/password/database keys.
	DefaultSecretName = "readyset-upstream-database"

	// DefaultServiceName is the Service fronting the ReadySet adapter; its
	// load balancer ingress is the address clients connect to.
	DefaultServiceName = "readyset-adapter"

	// ingressTemplate pulls the hostname-or-IP out of the first load
	// balancer ingress entry, whichever field is set.
	ingressTemplate = "{{ range (index .status.loadBalancer.ingress 0) }}{{ . }}{{ end }}"
)

// Target identifies the deployed resources the commands refer to. Zero
// values fall back to the chart's fixed resource names.
type Target struct {
	SecretName  string
	ServiceName string
	Namespace   string
}

func (t Target) withDefaults() Target {
	if t.SecretName == "" {
		t.SecretName = DefaultSecretName
	}
	if t.ServiceName == "" {
		t.ServiceName = DefaultServiceName
	}
	return t
}

func (t Target) namespaceFlag() string {
	if t.Namespace == "" {
		return ""
	}
	return " --namespace " + t.Namespace
}

// CredentialExports returns the shell assignments extracting the upstream
// database credentials from the chart's secret.
func (t Target) CredentialExports() []string {
	t = t.withDefaults()

	exports := make([]string, 0, 3)
	for _, key := range []struct{ envVar, secretKey string }{
		{"MYSQL_USER", "username"},
		{"MYSQL_PASSWORD", "password"},
		{"MYSQL_DATABASE", "database"},
	} {
		exports = append(exports, fmt.Sprintf(
			`%s=$(kubectl get secret %s%s -o jsonpath="{.data.%s}" | base64 --decode)`,
			key.envVar, t.SecretName, t.namespaceFlag(), key.secretKey,
		))
	}
	return exports
}

// HostExport returns the shell assignment resolving the adapter service's
// load balancer address. The kubectl template expression is part of the
// command text, not evaluated here.
func (t Target) HostExport() string {
	t = t.withDefaults()
	return fmt.Sprintf(
		`READYSET_HOST=$(kubectl get svc %s%s --template "%s")`,
		t.ServiceName, t.namespaceFlag(), ingressTemplate,
	)
}

// MySQLCommand returns the client invocation using the variables the other
// commands set.
func (t Target) MySQLCommand() string {
	return "mysql -u ${MYSQL_USER} -h ${READYSET_HOST} --password=${MYSQL_PASSWORD} --database=${MYSQL_DATABASE}"
}

// Script assembles the whole command block in the order the operator runs it.
func (t Target) Script() string {
	lines := t.CredentialExports()
	lines = append(lines, t.HostExport(), t.MySQLCommand())
	return strings.Join(lines, "\n")
}
