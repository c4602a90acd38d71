package tournament

type Tournament struct {
	ID                   int64
	Name                 string
	Description          string
	Year                 int
	MaximumOversPerMatch int
}
