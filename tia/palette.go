// Palette tables for the supported TV systems. Each color code the TIA
// produces indexes one of these 128 RGBA entries.
package tia

import "image/color"

// paletteNTSC holds the 128 entry RGBA lookup table, indexed by the
// TIA color code masked to 7 bits.
var paletteNTSC = [128]color.NRGBA{
	{R: 0x44, G: 0x44, B: 0x44, A: 0xFF},
	{R: 0x50, G: 0x40, B: 0x34, A: 0xFF},
	{R: 0x64, G: 0x48, B: 0x34, A: 0xFF},
	{R: 0x80, G: 0x48, B: 0x30, A: 0xFF},
	{R: 0x94, G: 0x48, B: 0x20, A: 0xFF},
	{R: 0xA4, G: 0x48, B: 0x14, A: 0xFF},
	{R: 0xB0, G: 0x44, B: 0x10, A: 0xFF},
	{R: 0xB8, G: 0x40, B: 0x08, A: 0xFF},
	{R: 0xB8, G: 0x40, B: 0x08, A: 0xFF},
	{R: 0xB4, G: 0x44, B: 0x20, A: 0xFF},
	{R: 0xA8, G: 0x48, B: 0x40, A: 0xFF},
	{R: 0x94, G: 0x48, B: 0x58, A: 0xFF},
	{R: 0x7C, G: 0x4C, B: 0x70, A: 0xFF},
	{R: 0x60, G: 0x50, B: 0x84, A: 0xFF},
	{R: 0x40, G: 0x50, B: 0x90, A: 0xFF},
	{R: 0x28, G: 0x50, B: 0x94, A: 0xFF},
	{R: 0x28, G: 0x50, B: 0x94, A: 0xFF},
	{R: 0x08, G: 0x58, B: 0x84, A: 0xFF},
	{R: 0x00, G: 0x60, B: 0x6C, A: 0xFF},
	{R: 0x00, G: 0x68, B: 0x50, A: 0xFF},
	{R: 0x00, G: 0x70, B: 0x30, A: 0xFF},
	{R: 0x00, G: 0x78, B: 0x14, A: 0xFF},
	{R: 0x18, G: 0x7C, B: 0x00, A: 0xFF},
	{R: 0x38, G: 0x7C, B: 0x00, A: 0xFF},
	{R: 0x54, G: 0x78, B: 0x00, A: 0xFF},
	{R: 0x6C, G: 0x70, B: 0x00, A: 0xFF},
	{R: 0x84, G: 0x64, B: 0x00, A: 0xFF},
	{R: 0x9C, G: 0x58, B: 0x00, A: 0xFF},
	{R: 0xB4, G: 0x4C, B: 0x00, A: 0xFF},
	{R: 0xC8, G: 0x44, B: 0x00, A: 0xFF},
	{R: 0xD8, G: 0x38, B: 0x00, A: 0xFF},
	{R: 0xE4, G: 0x24, B: 0x00, A: 0xFF},
	{R: 0xE4, G: 0x24, B: 0x00, A: 0xFF},
	{R: 0xE0, G: 0x38, B: 0x28, A: 0xFF},
	{R: 0xD4, G: 0x48, B: 0x4C, A: 0xFF},
	{R: 0xC0, G: 0x58, B: 0x6C, A: 0xFF},
	{R: 0xA4, G: 0x6C, B: 0x88, A: 0xFF},
	{R: 0x84, G: 0x7C, B: 0xA0, A: 0xFF},
	{R: 0x60, G: 0x88, B: 0xB0, A: 0xFF},
	{R: 0x38, G: 0x90, B: 0xBC, A: 0xFF},
	{R: 0x38, G: 0x90, B: 0xBC, A: 0xFF},
	{R: 0x10, G: 0x98, B: 0xA8, A: 0xFF},
	{R: 0x00, G: 0xA0, B: 0x8C, A: 0xFF},
	{R: 0x00, G: 0xA8, B: 0x70, A: 0xFF},
	{R: 0x00, G: 0xAC, B: 0x54, A: 0xFF},
	{R: 0x00, G: 0xB0, B: 0x34, A: 0xFF},
	{R: 0x1C, G: 0xAC, B: 0x00, A: 0xFF},
	{R: 0x44, G: 0xAC, B: 0x00, A: 0xFF},
	{R: 0x68, G: 0xA8, B: 0x00, A: 0xFF},
	{R: 0x8C, G: 0x9C, B: 0x00, A: 0xFF},
	{R: 0xAC, G: 0x90, B: 0x00, A: 0xFF},
	{R: 0xCC, G: 0x80, B: 0x00, A: 0xFF},
	{R: 0xE4, G: 0x70, B: 0x00, A: 0xFF},
	{R: 0xF8, G: 0x60, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x4C, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x40, B: 0x18, A: 0xFF},
	{R: 0xFF, G: 0x40, B: 0x18, A: 0xFF},
	{R: 0xF8, G: 0x4C, B: 0x40, A: 0xFF},
	{R: 0xE8, G: 0x60, B: 0x60, A: 0xFF},
	{R: 0xD0, G: 0x74, B: 0x7C, A: 0xFF},
	{R: 0xB4, G: 0x88, B: 0x98, A: 0xFF},
	{R: 0x94, G: 0x98, B: 0xB0, A: 0xFF},
	{R: 0x70, G: 0xA4, B: 0xC0, A: 0xFF},
	{R: 0x48, G: 0xAC, B: 0xCC, A: 0xFF},
	{R: 0x48, G: 0xAC, B: 0xCC, A: 0xFF},
	{R: 0x20, G: 0xB4, B: 0xB8, A: 0xFF},
	{R: 0x00, G: 0xBC, B: 0x9C, A: 0xFF},
	{R: 0x00, G: 0xC0, B: 0x7C, A: 0xFF},
	{R: 0x00, G: 0xC4, B: 0x58, A: 0xFF},
	{R: 0x00, G: 0xC8, B: 0x30, A: 0xFF},
	{R: 0x34, G: 0xCC, B: 0x00, A: 0xFF},
	{R: 0x5C, G: 0xCC, B: 0x00, A: 0xFF},
	{R: 0x80, G: 0xC8, B: 0x00, A: 0xFF},
	{R: 0xA4, G: 0xBC, B: 0x00, A: 0xFF},
	{R: 0xC4, G: 0xAC, B: 0x00, A: 0xFF},
	{R: 0xE0, G: 0x9C, B: 0x00, A: 0xFF},
	{R: 0xF8, G: 0x88, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x74, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x5C, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x4C, B: 0x20, A: 0xFF},
	{R: 0xFF, G: 0x4C, B: 0x20, A: 0xFF},
	{R: 0xF8, G: 0x5C, B: 0x54, A: 0xFF},
	{R: 0xE4, G: 0x74, B: 0x7C, A: 0xFF},
	{R: 0xC8, G: 0x8C, B: 0x98, A: 0xFF},
	{R: 0xA8, G: 0xA0, B: 0xB4, A: 0xFF},
	{R: 0x84, G: 0xB0, B: 0xCC, A: 0xFF},
	{R: 0x5E, G: 0xC0, B: 0xE0, A: 0xFF},
	{R: 0x34, G: 0xCC, B: 0xF0, A: 0xFF},
	{R: 0x34, G: 0xCC, B: 0xF0, A: 0xFF},
	{R: 0x0C, G: 0xD4, B: 0xDC, A: 0xFF},
	{R: 0x00, G: 0xD8, B: 0xC0, A: 0xFF},
	{R: 0x00, G: 0xDC, B: 0xA4, A: 0xFF},
	{R: 0x00, G: 0xE0, B: 0x80, A: 0xFF},
	{R: 0x00, G: 0xE4, B: 0x58, A: 0xFF},
	{R: 0x2C, G: 0xE8, B: 0x28, A: 0xFF},
	{R: 0x5C, G: 0xE8, B: 0x10, A: 0xFF},
	{R: 0x80, G: 0xE4, B: 0x00, A: 0xFF},
	{R: 0xA4, G: 0xE0, B: 0x00, A: 0xFF},
	{R: 0xC8, G: 0xD4, B: 0x00, A: 0xFF},
	{R: 0xE8, G: 0xC4, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0xB0, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x9C, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x84, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x70, B: 0x24, A: 0xFF},
	{R: 0xFF, G: 0x70, B: 0x24, A: 0xFF},
	{R: 0xF8, G: 0x7C, B: 0x68, A: 0xFF},
	{R: 0xE4, G: 0x90, B: 0x8C, A: 0xFF},
	{R: 0xC8, G: 0xA8, B: 0xA8, A: 0xFF},
	{R: 0xA4, G: 0xB8, B: 0xC4, A: 0xFF},
	{R: 0x80, G: 0xC8, B: 0xDC, A: 0xFF},
	{R: 0x58, G: 0xD8, B: 0xF0, A: 0xFF},
	{R: 0x2C, G: 0xE0, B: 0xFF, A: 0xFF},
	{R: 0x2C, G: 0xE0, B: 0xFF, A: 0xFF},
	{R: 0x00, G: 0xE8, B: 0xEC, A: 0xFF},
	{R: 0x00, G: 0xEC, B: 0xE0, A: 0xFF},
	{R: 0x00, G: 0xF0, B: 0xC8, A: 0xFF},
	{R: 0x00, G: 0xF4, B: 0xA0, A: 0xFF},
	{R: 0x00, G: 0xF8, B: 0x74, A: 0xFF},
	{R: 0x20, G: 0xFC, B: 0x44, A: 0xFF},
	{R: 0x5C, G: 0xFC, B: 0x28, A: 0xFF},
	{R: 0x80, G: 0xFC, B: 0x08, A: 0xFF},
	{R: 0xA4, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0xC8, G: 0xF8, B: 0x00, A: 0xFF},
	{R: 0xEC, G: 0xE8, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0xD4, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0xBC, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0xA0, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x8C, B: 0x30, A: 0xFF},
}

// palettePAL holds the 128 entry RGBA lookup table, indexed by the
// TIA color code masked to 7 bits.
var palettePAL = [128]color.NRGBA{
	{R: 0x44, G: 0x44, B: 0x44, A: 0xFF},
	{R: 0x44, G: 0x44, B: 0x44, A: 0xFF},
	{R: 0x5C, G: 0x40, B: 0x24, A: 0xFF},
	{R: 0x74, G: 0x3C, B: 0x14, A: 0xFF},
	{R: 0x8C, G: 0x38, B: 0x08, A: 0xFF},
	{R: 0xA0, G: 0x34, B: 0x00, A: 0xFF},
	{R: 0xB0, G: 0x30, B: 0x00, A: 0xFF},
	{R: 0xBC, G: 0x28, B: 0x00, A: 0xFF},
	{R: 0xBC, G: 0x28, B: 0x00, A: 0xFF},
	{R: 0xB4, G: 0x28, B: 0x1C, A: 0xFF},
	{R: 0xA4, G: 0x2C, B: 0x3C, A: 0xFF},
	{R: 0x8C, G: 0x34, B: 0x5C, A: 0xFF},
	{R: 0x70, G: 0x40, B: 0x78, A: 0xFF},
	{R: 0x50, G: 0x48, B: 0x8C, A: 0xFF},
	{R: 0x34, G: 0x54, B: 0x9C, A: 0xFF},
	{R: 0x1C, G: 0x5C, B: 0xA8, A: 0xFF},
	{R: 0x1C, G: 0x5C, B: 0xA8, A: 0xFF},
	{R: 0x08, G: 0x60, B: 0x94, A: 0xFF},
	{R: 0x00, G: 0x60, B: 0x78, A: 0xFF},
	{R: 0x00, G: 0x5C, B: 0x58, A: 0xFF},
	{R: 0x00, G: 0x58, B: 0x38, A: 0xFF},
	{R: 0x00, G: 0x58, B: 0x18, A: 0xFF},
	{R: 0x10, G: 0x60, B: 0x00, A: 0xFF},
	{R: 0x2C, G: 0x68, B: 0x00, A: 0xFF},
	{R: 0x44, G: 0x6C, B: 0x00, A: 0xFF},
	{R: 0x5C, G: 0x70, B: 0x00, A: 0xFF},
	{R: 0x74, G: 0x74, B: 0x00, A: 0xFF},
	{R: 0x8C, G: 0x78, B: 0x00, A: 0xFF},
	{R: 0xA0, G: 0x7C, B: 0x00, A: 0xFF},
	{R: 0xB4, G: 0x80, B: 0x00, A: 0xFF},
	{R: 0xC4, G: 0x80, B: 0x00, A: 0xFF},
	{R: 0xD0, G: 0x7C, B: 0x00, A: 0xFF},
	{R: 0xD0, G: 0x7C, B: 0x00, A: 0xFF},
	{R: 0xCC, G: 0x6C, B: 0x00, A: 0xFF},
	{R: 0xC4, G: 0x58, B: 0x00, A: 0xFF},
	{R: 0xBC, G: 0x44, B: 0x00, A: 0xFF},
	{R: 0xB0, G: 0x34, B: 0x10, A: 0xFF},
	{R: 0xA0, G: 0x28, B: 0x24, A: 0xFF},
	{R: 0x90, G: 0x1C, B: 0x38, A: 0xFF},
	{R: 0x80, G: 0x10, B: 0x4C, A: 0xFF},
	{R: 0x80, G: 0x10, B: 0x4C, A: 0xFF},
	{R: 0x6C, G: 0x14, B: 0x64, A: 0xFF},
	{R: 0x58, G: 0x18, B: 0x78, A: 0xFF},
	{R: 0x40, G: 0x20, B: 0x88, A: 0xFF},
	{R: 0x2C, G: 0x28, B: 0x94, A: 0xFF},
	{R: 0x18, G: 0x34, B: 0x9C, A: 0xFF},
	{R: 0x00, G: 0x40, B: 0xA0, A: 0xFF},
	{R: 0x00, G: 0x4C, B: 0x9C, A: 0xFF},
	{R: 0x00, G: 0x58, B: 0x90, A: 0xFF},
	{R: 0x00, G: 0x64, B: 0x7C, A: 0xFF},
	{R: 0x00, G: 0x70, B: 0x64, A: 0xFF},
	{R: 0x00, G: 0x7C, B: 0x48, A: 0xFF},
	{R: 0x00, G: 0x88, B: 0x24, A: 0xFF},
	{R: 0x00, G: 0x94, B: 0x00, A: 0xFF},
	{R: 0x14, G: 0xA0, B: 0x00, A: 0xFF},
	{R: 0x30, G: 0xAC, B: 0x00, A: 0xFF},
	{R: 0x4C, G: 0xBC, B: 0x00, A: 0xFF},
	{R: 0x64, G: 0xC8, B: 0x00, A: 0xFF},
	{R: 0x7C, G: 0xC4, B: 0x00, A: 0xFF},
	{R: 0x94, G: 0xBC, B: 0x00, A: 0xFF},
	{R: 0xAC, G: 0xAC, B: 0x00, A: 0xFF},
	{R: 0xC0, G: 0x9C, B: 0x00, A: 0xFF},
	{R: 0xD4, G: 0x88, B: 0x00, A: 0xFF},
	{R: 0xE4, G: 0x70, B: 0x00, A: 0xFF},
	{R: 0xE4, G: 0x70, B: 0x00, A: 0xFF},
	{R: 0xE0, G: 0x58, B: 0x00, A: 0xFF},
	{R: 0xD8, G: 0x40, B: 0x00, A: 0xFF},
	{R: 0xCC, G: 0x2C, B: 0x00, A: 0xFF},
	{R: 0xBC, G: 0x18, B: 0x00, A: 0xFF},
	{R: 0xAC, G: 0x08, B: 0x00, A: 0xFF},
	{R: 0x98, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x84, G: 0x00, B: 0x08, A: 0xFF},
	{R: 0x84, G: 0x00, B: 0x08, A: 0xFF},
	{R: 0x70, G: 0x00, B: 0x28, A: 0xFF},
	{R: 0x58, G: 0x00, B: 0x44, A: 0xFF},
	{R: 0x40, G: 0x00, B: 0x60, A: 0xFF},
	{R: 0x2C, G: 0x00, B: 0x78, A: 0xFF},
	{R: 0x14, G: 0x00, B: 0x8C, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xA0, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xB0, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xC4, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xD4, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xE4, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xF0, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xFC, A: 0xFF},
	{R: 0x00, G: 0x20, B: 0xFC, A: 0xFF},
	{R: 0x00, G: 0x40, B: 0xFC, A: 0xFF},
	{R: 0x00, G: 0x5C, B: 0xFC, A: 0xFF},
	{R: 0x00, G: 0x5C, B: 0xFC, A: 0xFF},
	{R: 0x00, G: 0x74, B: 0xE8, A: 0xFF},
	{R: 0x00, G: 0x8C, B: 0xD4, A: 0xFF},
	{R: 0x00, G: 0xA4, B: 0xB4, A: 0xFF},
	{R: 0x00, G: 0xBC, B: 0x94, A: 0xFF},
	{R: 0x00, G: 0xD0, B: 0x74, A: 0xFF},
	{R: 0x00, G: 0xE4, B: 0x50, A: 0xFF},
	{R: 0x00, G: 0xF4, B: 0x2C, A: 0xFF},
	{R: 0x00, G: 0xFC, B: 0x08, A: 0xFF},
	{R: 0x28, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0x48, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0x64, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0x80, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0x9C, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0xBC, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0xD4, G: 0xFC, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00},
}
