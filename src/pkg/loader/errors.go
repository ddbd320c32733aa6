// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package loader

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when a directory holds no recognized task file
type NotFoundError struct {
	Dir   string
	Names []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no Kylefile found (looked for: %s)", strings.Join(e.Names, ", "))
}

// UnsupportedExtensionError is returned for a Kylefile extension that maps to no format
type UnsupportedExtensionError struct {
	Ext string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// UnknownFormatError is returned for a header naming an unknown format
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format: %s", e.Name)
}
