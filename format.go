/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package ring

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var diagnosticsPrinter = message.NewPrinter(language.English)

// formatFraction renders a [0, 1] fraction as a locale-aware percentage
// for diagnostic output (Plan.String, ShardTracker.String).
func formatFraction(f float64) string {
	return diagnosticsPrinter.Sprintf("%.4f%%", f*100)
}
