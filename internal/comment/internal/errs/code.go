package errs

var (
	SystemError     = ErrorCode{Code: 504001, Msg: "系统错误"}
	ValidationError = ErrorCode{Code: 504002, Msg: "参数错误"}
	NotFoundError   = ErrorCode{Code: 504003, Msg: "评论不存在"}
	ForbiddenError  = ErrorCode{Code: 504004, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
