// Package canonical registers the reference circuit: a long lap with
// hairpins, serpentines and right-angle corners, roughly 60 units wide.
package canonical

import (
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/track"
)

// ID is the registry key of the canonical circuit.
const ID = "canonical"

// Both loops repeat their first point at the end, closing the circuit.
// x grows to the right, y grows downward.
var outer = [][2]int{
	// 1: curve
	{10, 690},
	{11, 625},
	{15, 575},
	{21, 525},
	{30, 475},
	{41, 425},
	{55, 375},
	{71, 325},
	{90, 275},
	{111, 225},
	// 2: turn
	{135, 175},
	{165, 125},
	{205, 85},
	{255, 55},
	{315, 35},
	// 3: straight
	{380, 25},
	{450, 25},
	{550, 25},
	{1150, 25},
	// 4: hairpin
	{1207, 48},
	{1230, 105},
	{1207, 162},
	{1150, 185},
	// 5: downward curve
	{1050, 190},
	{960, 210},
	{880, 245},
	{820, 295},
	// 6: upward curve
	{720, 335},
	{620, 345},
	{530, 325},
	{450, 285},
	{400, 225},
	// 7: hairpin
	{384, 211},
	{354, 203},
	{324, 211},
	{302, 233},
	{294, 263},
	{302, 293},
	{324, 315},
	{354, 323},
	{400, 323},
	// 8: straight
	{450, 323},
	// 9: hairpin
	{507, 346},
	{530, 403},
	{507, 460},
	{450, 483},
	// 10: upward curve
	{395, 479},
	{340, 470},
	{290, 460},
	{240, 445},
	// 11: hairpin
	{217, 434},
	{196, 443},
	{187, 464},
	{196, 485},
	// 12: straight
	{250, 525},
	// 13: serpentine
	{350, 565},
	{450, 525},
	{550, 565},
	{650, 525},
	{750, 565},
	{850, 525},
	{950, 565},
	// 14: 90 degree
	{1000, 565},
	{1000, 475},
	// 15: 90 degree
	{1000, 475},
	{850, 475},
	// 16: serpentine
	{850, 475},
	{750, 515},
	{650, 475},
	{550, 515},
	// 17: 90 degree
	{550, 515},
	{550, 350},
	// 18: 90 degree
	{800, 350},
	// 19: gentle upward curve
	{830, 340},
	{860, 315},
	{900, 275},
	{950, 240},
	{1010, 215},
	{1080, 200},
	// 20: large downward curve
	{1140, 210},
	{1200, 245},
	{1250, 305},
	{1270, 385},
	{1270, 475},
	{1250, 565},
	{1200, 635},
	{1150, 690},
	// 21: final straight
	{10, 690},
}

var inner = [][2]int{
	// 1: curve
	{70, 630},
	{74, 580},
	{80, 533},
	{88, 486},
	{99, 439},
	{112, 392},
	{127, 344},
	{145, 297},
	// 2: turn
	{165, 249},
	{187, 203},
	{212, 161},
	{241, 132},
	{280, 109},
	{329, 93},
	// 3: straight
	{384, 84},
	{450, 85},
	{550, 85},
	{1150, 85},
	// 4: sharp hairpin
	{1164, 91},
	{1170, 105},
	{1164, 119},
	{1150, 125},
	// 5: downward curve
	{1047, 130},
	{947, 152},
	{856, 191},
	{782, 249},
	// 6: upward curve
	{698, 280},
	{614, 286},
	{543, 267},
	{476, 232},
	{446, 187},
	// 7: hairpin
	{414, 159},
	{354, 143},
	{294, 159},
	{250, 203},
	{234, 263},
	{250, 323},
	{294, 367},
	{354, 383},
	{400, 383},
	// 8: straight
	{450, 383},
	// 9: hairpin
	{464, 389},
	{470, 403},
	{464, 417},
	{450, 423},
	// 10: upward curve
	{405, 419},
	{360, 410},
	{310, 400},
	{260, 385},
	// 11: hairpin
	{243, 380},
	{154, 401},
	{127, 464},
	{154, 527},
	// 12: straight
	{250, 585},
	// 13: serpentine
	{350, 625},
	{450, 585},
	{550, 625},
	{650, 585},
	{750, 625},
	{850, 585},
	{950, 625},
	// 14: 90 degree
	{1060, 625},
	{1060, 475},
	// 15: 90 degree
	{1060, 415},
	{850, 415},
	// 16: serpentine
	{850, 415},
	{750, 455},
	{650, 415},
	{600, 435},
	// 17: 90 degree
	{600, 435},
	{600, 410},
	// 18: 90 degree
	{800, 410},
	// 19: gentle upward curve
	{845, 398},
	{890, 365},
	{935, 320},
	{985, 290},
	{1040, 270},
	{1100, 260},
	// 20: large downward curve
	{1120, 270},
	{1170, 295},
	{1210, 345},
	{1210, 405},
	{1210, 475},
	{1190, 535},
	{1150, 595},
	{1100, 630},
	// 21: final straight
	{70, 630},
}

// Definition builds the canonical circuit.
func Definition() track.Definition {
	return track.Definition{
		ID:    ID,
		Name:  "Grand Circuit",
		Track: track.FromInts(outer, inner),
		Start: track.DefaultStart(),
	}
}

func init() {
	registry.Register(ID, Definition)
}
