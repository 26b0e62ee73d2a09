package response

const (
	CodeSuccess    = 0
	CodeBusiness   = 1
	CodeUnexpected = -1
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func New(code int, msg string, data any) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
		Data: data,
	}
}

func Success(data any) *Response {
	return New(CodeSuccess, "success", data)
}

func BusinessError(msg string, details any) *Response {
	return New(CodeBusiness, msg, details)
}

func UnexpectedError() *Response {
	return New(CodeUnexpected, "internal server error", nil)
}

// With overrides the envelope code, typically with a business code.
func (r *Response) With(code int) *Response {
	r.Code = code
	return r
}
