// This file is part of Cartimport.
//
// Cartimport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cartimport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cartimport.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	file      lipgloss.Style
	supported lipgloss.Style
	allowed   lipgloss.Style
	err       lipgloss.Style
	patch     lipgloss.Style
	label     lipgloss.Style
	summary   lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

// newStyles creates styles suitable for the output. styling is removed
// automatically if output is not a terminal.
func newStyles(output io.Writer) styles {
	r := lipgloss.NewRenderer(output)
	return styles{
		file:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		supported: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		allowed:   r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		err:       r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		patch:     r.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		label:     r.NewStyle().Foreground(lipgloss.ANSIColor(4)).Width(12),
		summary:   r.NewStyle().Bold(true),
	}
}
