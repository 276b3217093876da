package errs

var (
	SystemError     = ErrorCode{Code: 505001, Msg: "系统错误"}
	ValidationError = ErrorCode{Code: 505002, Msg: "参数错误"}
	NotFoundError   = ErrorCode{Code: 505003, Msg: "视频不存在"}
	ForbiddenError  = ErrorCode{Code: 505004, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
