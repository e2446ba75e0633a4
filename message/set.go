// This file is part of twitchnotifier.
//
// twitchnotifier is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// twitchnotifier is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with twitchnotifier.  If not, see <https://www.gnu.org/licenses/>.

package message

// Set holds every template pair the program uses
type Set struct {
	// User is printed by check and --once
	User Pair
	// Title and Content make up a notification
	Title   Pair
	Content Pair
	// List is one line of the list command
	List Pair
	// Log is one line in the log sink
	Log Pair
}

// Defaults are used when nothing is configured
func Defaults() Set {
	return Set{
		User:    Pair{On: "$1 is $2", Off: "$1 is $2"},
		Title:   Pair{On: "$1", Off: "$1"},
		Content: Pair{On: "is $2", Off: "is $2"},
		List:    Pair{On: "$1", Off: "$1"},
		Log:     Pair{On: "(${%d %H:%M:%S}) $1 is $2", Off: "(${%d %H:%M:%S}) $1 is $2"},
	}
}
