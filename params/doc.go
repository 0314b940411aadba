// SPDX-License-Identifier: EPL-2.0

// Package params reads the params.txt file that sits next to the clips of a
// sound group.
//
// The file is INI without sections, parsed by gopkg.in/ini.v1. Each line
// holds a key and a value separated by '=' or ':':
//
//	# played when the engine idles
//	volume = 0.6
//	loopTime: 2.5
//
// Lines starting with '#' or ';' are comments. Keys are case-sensitive.
// Keys below a [section] header are not group parameters and are ignored.
package params
