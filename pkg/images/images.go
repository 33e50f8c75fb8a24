package images

import (
	"context"
	"io"

	"github.com/containers/image/v5/copy"
	"github.com/containers/image/v5/docker"
	"github.com/containers/image/v5/docker/archive"
	"github.com/containers/image/v5/signature"
	"github.com/containers/image/v5/types"
	"github.com/pkg/errors"
)

// Download pulls a registry image into a docker-archive tarball at dest,
// suitable for `docker load` on an airgapped host.
func Download(image string, dest string) error {
	srcRef, err := docker.ParseReference("//" + image)
	if err != nil {
		return errors.Wrapf(err, "parsing image reference %s", image)
	}

	destRef, err := archive.ParseReference(dest + ":" + image)
	if err != nil {
		return errors.Wrapf(err, "parsing archive destination %s", dest)
	}

	policy := &signature.Policy{
		Default: []signature.PolicyRequirement{
			signature.NewPRInsecureAcceptAnything(),
		},
	}
	policyContext, err := signature.NewPolicyContext(policy)
	if err != nil {
		return err
	}
	defer policyContext.Destroy()

	_, err = copy.Image(context.Background(), policyContext, destRef, srcRef, &copy.Options{
		ReportWriter: io.Discard,
		SourceCtx: &types.SystemContext{
			OSChoice:           "linux",
			ArchitectureChoice: "amd64",
		},
	})
	if err != nil {
		return errors.Wrapf(err, "copying image %s", image)
	}

	return nil
}
