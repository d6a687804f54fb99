package domain

type Banner struct {
	ID       int64  `json:"id"`
	FilePath string `json:"-"`
	Link     string `json:"link"`
}
