package spec

import "github.com/kovyrin/readyset/pkg/helm/values"

// Spec describes a ReadySet release channel: where the chart lives and the
// default values it should be installed with.
type Spec struct {
	Chart struct {
		URL     string `json:"url" yaml:"url"`
		Version string `json:"version" yaml:"version"`
		Name    string `json:"name" yaml:"name"`
		Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	} `json:"chart" yaml:"chart"`
	Values values.Values `json:"values" yaml:"values"`
}
