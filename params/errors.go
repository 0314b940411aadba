// SPDX-License-Identifier: EPL-2.0

package params

import "errors"

var (
	ErrMalformed = errors.New("malformed params file")
	ErrNoKey     = errors.New("key not set")
	ErrNotNumber = errors.New("value is not a finite number")
)
