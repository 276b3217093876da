package errs

var (
	SystemError       = ErrorCode{Code: 501001, Msg: "系统错误"}
	ValidationError   = ErrorCode{Code: 501002, Msg: "参数错误"}
	UserNotFoundError = ErrorCode{Code: 501003, Msg: "用户不存在"}
	UserDuplicate     = ErrorCode{Code: 501004, Msg: "用户名或邮箱已被注册"}
	LoginFailed       = ErrorCode{Code: 501005, Msg: "用户名或密码错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
