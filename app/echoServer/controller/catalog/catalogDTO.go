package catalog

type CreateItemReq struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	Code   string `json:"code"`
	Copies int    `json:"copies" validate:"gte=0"`
}
