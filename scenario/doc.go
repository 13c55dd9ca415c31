// SPDX-License-Identifier: MIT

// Package scenario reads and writes the text format describing a simulation:
// a road network, the trip endpoints and per-day traffic records.
//
// The format is line oriented. Blank lines are ignored and surrounding
// whitespace is trimmed:
//
//	<Source>A</Source>
//	<Destination>D</Destination>
//	<Roads>
//	R1; A; B; 10
//	R2; B; D; 7
//	</Roads>
//	<Predictions>
//	<Day>
//	R1; heavy
//	R2; low
//	</Day>
//	</Predictions>
//	<ActualTrafficPerDay>
//	<Day>
//	R1; normal
//	R2; low
//	</Day>
//	</ActualTrafficPerDay>
//
// Every predicted day must have a matching actual day. Roads missing from a
// day record count as normal traffic.
package scenario
