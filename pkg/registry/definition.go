// Package registry provides the static catalog of node definitions: ports,
// parameter schemas, provider bindings and credit costs.
package registry

import "github.com/haus-node/haus/pkg/models"

// Category groups nodes in the editor's library panel.
type Category string

const (
	CategoryImageGen  Category = "image-gen"
	CategoryVideoGen  Category = "video-gen"
	CategoryImageEdit Category = "image-edit"
	CategoryVideoEdit Category = "video-edit"
	CategoryAudio     Category = "audio"
	CategoryLipsync   Category = "lipsync"
	CategoryVector    Category = "vector"
	CategoryText      Category = "text"
	CategoryData      Category = "data"
	CategoryHelper    Category = "helper"
)

// Port is a named, typed input or output slot on a node definition.
type Port struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Type        models.PortType `json:"type"`
	Required    bool            `json:"required,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ParameterType discriminates the tagged parameter union. The editor renders
// the matching control; the engine derives coercion rules from it.
type ParameterType string

const (
	ParameterText    ParameterType = "text"
	ParameterNumber  ParameterType = "number"
	ParameterSelect  ParameterType = "select"
	ParameterBoolean ParameterType = "boolean"
	ParameterSlider  ParameterType = "slider"
	ParameterFile    ParameterType = "file"
)

// Option is one choice of a select parameter.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Parameter describes one user-settable value on a node. Which fields are
// meaningful depends on Type: Min/Max/Step for number and slider, Options
// for select, Multiline/Placeholder for text, Accept for file.
type Parameter struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Type        ParameterType `json:"type"`
	Description string        `json:"description,omitempty"`
	Required    bool          `json:"required,omitempty"`
	Default     any           `json:"default,omitempty"`
	Min         *float64      `json:"min,omitempty"`
	Max         *float64      `json:"max,omitempty"`
	Step        *float64      `json:"step,omitempty"`
	Options     []Option      `json:"options,omitempty"`
	Multiline   bool          `json:"multiline,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	Accept      string        `json:"accept,omitempty"`
}

// Definition is the registry metadata for one node type.
type Definition struct {
	ID            string          `json:"id"`
	Label         string          `json:"label"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Color         string          `json:"color"`
	Inputs        []Port          `json:"inputs"`
	Outputs       []Port          `json:"outputs"`
	Parameters    []Parameter     `json:"parameters"`
	CreditCost    int             `json:"creditCost"`
	Provider      models.Provider `json:"provider"`
	ProviderModel string          `json:"providerModel"`
	Tags          []string        `json:"tags,omitempty"`
}

// DefaultParameters returns the parameter defaults declared by the
// definition, the baseline a fresh node starts from.
func (d *Definition) DefaultParameters() map[string]any {
	params := make(map[string]any, len(d.Parameters))

	for _, p := range d.Parameters {
		if p.Default != nil {
			params[p.ID] = p.Default
		}
	}

	return params
}

// Input returns the declared input port with the given id.
func (d *Definition) Input(id string) (Port, bool) {
	for _, p := range d.Inputs {
		if p.ID == id {
			return p, true
		}
	}

	return Port{}, false
}

// Output returns the declared output port with the given id.
func (d *Definition) Output(id string) (Port, bool) {
	for _, p := range d.Outputs {
		if p.ID == id {
			return p, true
		}
	}

	return Port{}, false
}

func floatPtr(v float64) *float64 { return &v }
