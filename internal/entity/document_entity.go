package entity

// RetrievedDocument is one nearest-neighbor match from the transcript store.
// Ordered by descending similarity; never mutated after retrieval.
type RetrievedDocument struct {
	Id              string
	Text            string
	Title           string
	Url             string
	ChunkId         string
	SimilarityScore float64 // 1 - cosine distance, in [0,1]
}
