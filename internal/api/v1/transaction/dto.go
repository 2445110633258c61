package transaction

// listQuery binds the paging query parameters. Defaults match the external
// contract: page=1, size=10.
type listQuery struct {
	Page int `form:"page,default=1" binding:"omitempty,min=1"`
	Size int `form:"size,default=10" binding:"omitempty,min=1"`
}
