package models

type ListMeta struct {
	Total int `json:"total"`
}

// ListResponse is the envelope for collection endpoints: {data, meta:{total}}.
type ListResponse[T any] struct {
	Data []T      `json:"data"`
	Meta ListMeta `json:"meta"`
}

func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Meta: ListMeta{Total: len(items)}}
}
