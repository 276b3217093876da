package errs

var (
	SystemError        = ErrorCode{Code: 502001, Msg: "系统错误"}
	ValidationError    = ErrorCode{Code: 502002, Msg: "参数错误"}
	VideoNotFoundError = ErrorCode{Code: 502003, Msg: "视频不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
