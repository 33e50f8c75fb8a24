package helm

import (
	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/kubectl/pkg/scheme"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/releaseutil"
)

// GetRuntimeObjects renders the chart templates client-side and decodes every
// manifest the kubectl scheme knows about. Unknown kinds are skipped, which
// matches what we need the objects for (finding pod-bearing workloads).
func GetRuntimeObjects(chartPath string, vals map[string]interface{}) ([]runtime.Object, error) {
	ch, err := loader.Load(chartPath)
	if err != nil {
		return nil, errors.Wrapf(err, "loading chart %s", chartPath)
	}

	install := action.NewInstall(new(action.Configuration))
	install.DryRun = true
	install.ClientOnly = true
	install.ReleaseName = DefaultReleaseName
	install.Namespace = "default"
	install.IncludeCRDs = true

	rel, err := install.Run(ch, vals)
	if err != nil {
		return nil, errors.Wrap(err, "rendering chart templates")
	}

	var objects []runtime.Object
	decoder := scheme.Codecs.UniversalDeserializer()
	for _, manifest := range releaseutil.SplitManifests(rel.Manifest) {
		obj, _, err := decoder.Decode([]byte(manifest), nil, nil)
		if err != nil {
			continue
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

// ExtractImages collects the container images referenced by the pod-bearing
// workloads in objects, in encounter order.
func ExtractImages(objects []runtime.Object) []string {
	var images []string
	for _, obj := range objects {
		switch o := obj.(type) {
		case *appsv1.Deployment:
			images = append(images, podImages(o.Spec.Template.Spec)...)
		case *appsv1.StatefulSet:
			images = append(images, podImages(o.Spec.Template.Spec)...)
		case *appsv1.DaemonSet:
			images = append(images, podImages(o.Spec.Template.Spec)...)
		case *batchv1.Job:
			images = append(images, podImages(o.Spec.Template.Spec)...)
		case *corev1.Pod:
			images = append(images, podImages(o.Spec)...)
		}
	}
	return images
}

func podImages(spec corev1.PodSpec) []string {
	var images []string
	for _, c := range spec.InitContainers {
		images = append(images, c.Image)
	}
	for _, c := range spec.Containers {
		images = append(images, c.Image)
	}
	return images
}
