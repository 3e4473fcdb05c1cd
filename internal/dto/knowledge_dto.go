package dto

type ReindexResponse struct {
	Indexed int `json:"indexed"`
}
