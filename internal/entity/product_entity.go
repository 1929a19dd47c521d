package entity

// Product is a store item resolved from video titles by tag match.
type Product struct {
	Id    string
	Title string
	Tags  []string
	Link  string
}
