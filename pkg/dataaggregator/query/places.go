package query

type Places struct {
	Value string `validate:"required"`
}

func (p Places) Validate() error {
	return validate(p)
}

// PlacesBatch looks up several names, each as its own invocation.
type PlacesBatch struct {
	Values []string `validate:"required,min=1,dive,required"`
}

func (p PlacesBatch) Validate() error {
	return validate(p)
}
