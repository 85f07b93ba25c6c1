package hyprtint

type Colorizer interface {
	Current() (ColorParameters, error)
	Apply(params ColorParameters) error
}
