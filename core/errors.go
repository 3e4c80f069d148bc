/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"errors"
	"fmt"
)

type wrappedError struct {
	sentinel error
	cause    error
}

func (w wrappedError) Error() string {
	return fmt.Sprintf("%v: %v", w.sentinel, w.cause)
}

func (w wrappedError) Is(target error) bool {
	return errors.Is(w.sentinel, target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// WrapError returns cause as an instance of the sentinel error, e.g. lotl.ErrInvalidConfiguration.
// Unlike fmt.Errorf with %w, errors.Is matches both the sentinel and the cause.
func WrapError(sentinel error, cause error) error {
	return wrappedError{
		sentinel: sentinel,
		cause:    cause,
	}
}
