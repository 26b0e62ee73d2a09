package errs

const (
	BizCodeInvalidParams = 1001

	BizCodeDeviceNotFound    = 8001
	BizCodeFetchDeviceData   = 8002
	BizCodeUnsupportedLocale = 8003
	BizCodeUnsupportedTheme  = 8004
)
