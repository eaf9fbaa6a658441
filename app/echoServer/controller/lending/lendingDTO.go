package lending

type IssueReq struct {
	MemberID string `json:"member_id" validate:"required"`
	ItemID   string `json:"item_id" validate:"required"`
	AsOf     string `json:"as_of"` // YYYY-MM-DD, defaults to today (UTC)
}

type ReturnReq struct {
	MemberID string `json:"member_id" validate:"required"`
	ItemID   string `json:"item_id" validate:"required"`
	AsOf     string `json:"as_of"`
}
