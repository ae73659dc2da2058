package modes

type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

func (m Mode) String() string {
	return string(m)
}
