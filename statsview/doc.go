// This file is part of uARM.
//
// uARM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uARM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uARM.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview provides a local HTTP server offering runtime statistics
// for a running emulation. The server is only built when the statsview build
// tag is present:
//
//	go build -tags statsview .
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch the graphical statistics are viewable at:
//
//	localhost:12700/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12700/debug/pprof/
package statsview
