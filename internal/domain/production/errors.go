package production

import "errors"

var ErrQueryFailed = errors.New("record store query failed")
