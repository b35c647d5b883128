// The shared opcode dispatch table: one entry per opcode byte holding
// the addressing mode, the operation and the base cycle count. Cycle
// penalties (page cross, branch taken, decimal mode) are layered on by
// the mode and operation functions at run time.
//
// Opcode matrix taken from:
// http://wiki.nesdev.com/w/index.php/CPU_unofficial_opcodes#Games_using_unofficial_opcodes
//
// Opcode descriptions/timing/etc:
// http://obelisk.me.uk/6502/reference.html
package cpu

// opcode is one immutable entry of the dispatch table.
type opcode struct {
	mode   func(*Chip)
	op     func(*Chip)
	cycles uint8
}

var opcodeTable = [256]opcode{
	0x00: {modeImplied, opBRK, 7}, // BRK
	0x01: {modeIndirectX, opORA, 6}, // ORA (d,x)
	0x02: {modeImplied, opJAM, 2}, // JAM
	0x03: {modeIndirectX, opSLO, 8}, // SLO (d,x)
	0x04: {modeZP, opNOP, 3}, // NOP d
	0x05: {modeZP, opORA, 3}, // ORA d
	0x06: {modeZP, opASL, 5}, // ASL d
	0x07: {modeZP, opSLO, 5}, // SLO d
	0x08: {modeImplied, opPHP, 3}, // PHP
	0x09: {modeImmediate, opORA, 2}, // ORA #i
	0x0A: {modeAccumulator, opASL, 2}, // ASL
	0x0B: {modeImmediate, opANC, 2}, // ANC #i
	0x0C: {modeAbsolute, opNOP, 4}, // NOP a
	0x0D: {modeAbsolute, opORA, 4}, // ORA a
	0x0E: {modeAbsolute, opASL, 6}, // ASL a
	0x0F: {modeAbsolute, opSLO, 6}, // SLO a
	0x10: {modeRelative, opBPL, 2}, // BPL *+r
	0x11: {modeIndirectY, opORA, 5}, // ORA (d),y
	0x12: {modeImplied, opJAM, 2}, // JAM
	0x13: {modeIndirectY, opSLO, 8}, // SLO (d),y
	0x14: {modeZPX, opNOP, 4}, // NOP d,x
	0x15: {modeZPX, opORA, 4}, // ORA d,x
	0x16: {modeZPX, opASL, 6}, // ASL d,x
	0x17: {modeZPX, opSLO, 6}, // SLO d,x
	0x18: {modeImplied, opCLC, 2}, // CLC
	0x19: {modeAbsoluteY, opORA, 4}, // ORA a,y
	0x1A: {modeImplied, opNOP, 2}, // NOP
	0x1B: {modeAbsoluteY, opSLO, 7}, // SLO a,y
	0x1C: {modeAbsoluteX, opNOP, 4}, // NOP a,x
	0x1D: {modeAbsoluteX, opORA, 4}, // ORA a,x
	0x1E: {modeAbsoluteX, opASL, 7}, // ASL a,x
	0x1F: {modeAbsoluteX, opSLO, 7}, // SLO a,x
	0x20: {modeAbsolute, opJSR, 6}, // JSR a
	0x21: {modeIndirectX, opAND, 6}, // AND (d,x)
	0x22: {modeImplied, opJAM, 2}, // JAM
	0x23: {modeIndirectX, opRLA, 8}, // RLA (d,x)
	0x24: {modeZP, opBIT, 3}, // BIT d
	0x25: {modeZP, opAND, 3}, // AND d
	0x26: {modeZP, opROL, 5}, // ROL d
	0x27: {modeZP, opRLA, 5}, // RLA d
	0x28: {modeImplied, opPLP, 4}, // PLP
	0x29: {modeImmediate, opAND, 2}, // AND #i
	0x2A: {modeAccumulator, opROL, 2}, // ROL
	0x2B: {modeImmediate, opANC, 2}, // ANC #i
	0x2C: {modeAbsolute, opBIT, 4}, // BIT a
	0x2D: {modeAbsolute, opAND, 4}, // AND a
	0x2E: {modeAbsolute, opROL, 6}, // ROL a
	0x2F: {modeAbsolute, opRLA, 6}, // RLA a
	0x30: {modeRelative, opBMI, 2}, // BMI *+r
	0x31: {modeIndirectY, opAND, 5}, // AND (d),y
	0x32: {modeImplied, opJAM, 2}, // JAM
	0x33: {modeIndirectY, opRLA, 8}, // RLA (d),y
	0x34: {modeZPX, opNOP, 4}, // NOP d,x
	0x35: {modeZPX, opAND, 4}, // AND d,x
	0x36: {modeZPX, opROL, 6}, // ROL d,x
	0x37: {modeZPX, opRLA, 6}, // RLA d,x
	0x38: {modeImplied, opSEC, 2}, // SEC
	0x39: {modeAbsoluteY, opAND, 4}, // AND a,y
	0x3A: {modeImplied, opNOP, 2}, // NOP
	0x3B: {modeAbsoluteY, opRLA, 7}, // RLA a,y
	0x3C: {modeAbsoluteX, opNOP, 4}, // NOP a,x
	0x3D: {modeAbsoluteX, opAND, 4}, // AND a,x
	0x3E: {modeAbsoluteX, opROL, 7}, // ROL a,x
	0x3F: {modeAbsoluteX, opRLA, 7}, // RLA a,x
	0x40: {modeImplied, opRTI, 6}, // RTI
	0x41: {modeIndirectX, opEOR, 6}, // EOR (d,x)
	0x42: {modeImplied, opJAM, 2}, // JAM
	0x43: {modeIndirectX, opSRE, 8}, // SRE (d,x)
	0x44: {modeZP, opNOP, 3}, // NOP d
	0x45: {modeZP, opEOR, 3}, // EOR d
	0x46: {modeZP, opLSR, 5}, // LSR d
	0x47: {modeZP, opSRE, 5}, // SRE d
	0x48: {modeImplied, opPHA, 3}, // PHA
	0x49: {modeImmediate, opEOR, 2}, // EOR #i
	0x4A: {modeAccumulator, opLSR, 2}, // LSR
	0x4B: {modeImmediate, opALR, 2}, // ALR #i
	0x4C: {modeAbsolute, opJMP, 3}, // JMP a
	0x4D: {modeAbsolute, opEOR, 4}, // EOR a
	0x4E: {modeAbsolute, opLSR, 6}, // LSR a
	0x4F: {modeAbsolute, opSRE, 6}, // SRE a
	0x50: {modeRelative, opBVC, 2}, // BVC *+r
	0x51: {modeIndirectY, opEOR, 5}, // EOR (d),y
	0x52: {modeImplied, opJAM, 2}, // JAM
	0x53: {modeIndirectY, opSRE, 8}, // SRE (d),y
	0x54: {modeZPX, opNOP, 4}, // NOP d,x
	0x55: {modeZPX, opEOR, 4}, // EOR d,x
	0x56: {modeZPX, opLSR, 6}, // LSR d,x
	0x57: {modeZPX, opSRE, 6}, // SRE d,x
	0x58: {modeImplied, opCLI, 2}, // CLI
	0x59: {modeAbsoluteY, opEOR, 4}, // EOR a,y
	0x5A: {modeImplied, opNOP, 2}, // NOP
	0x5B: {modeAbsoluteY, opSRE, 7}, // SRE a,y
	0x5C: {modeAbsoluteX, opNOP, 4}, // NOP a,x
	0x5D: {modeAbsoluteX, opEOR, 4}, // EOR a,x
	0x5E: {modeAbsoluteX, opLSR, 7}, // LSR a,x
	0x5F: {modeAbsoluteX, opSRE, 7}, // SRE a,x
	0x60: {modeImplied, opRTS, 6}, // RTS
	0x61: {modeIndirectX, opADC, 6}, // ADC (d,x)
	0x62: {modeImplied, opJAM, 2}, // JAM
	0x63: {modeIndirectX, opRRA, 8}, // RRA (d,x)
	0x64: {modeZP, opNOP, 3}, // NOP d
	0x65: {modeZP, opADC, 3}, // ADC d
	0x66: {modeZP, opROR, 5}, // ROR d
	0x67: {modeZP, opRRA, 5}, // RRA d
	0x68: {modeImplied, opPLA, 4}, // PLA
	0x69: {modeImmediate, opADC, 2}, // ADC #i
	0x6A: {modeAccumulator, opROR, 2}, // ROR
	0x6B: {modeImmediate, opARR, 2}, // ARR #i
	0x6C: {modeIndirect, opJMP, 5}, // JMP (a)
	0x6D: {modeAbsolute, opADC, 4}, // ADC a
	0x6E: {modeAbsolute, opROR, 6}, // ROR a
	0x6F: {modeAbsolute, opRRA, 6}, // RRA a
	0x70: {modeRelative, opBVS, 2}, // BVS *+r
	0x71: {modeIndirectY, opADC, 5}, // ADC (d),y
	0x72: {modeImplied, opJAM, 2}, // JAM
	0x73: {modeIndirectY, opRRA, 8}, // RRA (d),y
	0x74: {modeZPX, opNOP, 4}, // NOP d,x
	0x75: {modeZPX, opADC, 4}, // ADC d,x
	0x76: {modeZPX, opROR, 6}, // ROR d,x
	0x77: {modeZPX, opRRA, 6}, // RRA d,x
	0x78: {modeImplied, opSEI, 2}, // SEI
	0x79: {modeAbsoluteY, opADC, 4}, // ADC a,y
	0x7A: {modeImplied, opNOP, 2}, // NOP
	0x7B: {modeAbsoluteY, opRRA, 7}, // RRA a,y
	0x7C: {modeAbsoluteX, opNOP, 4}, // NOP a,x
	0x7D: {modeAbsoluteX, opADC, 4}, // ADC a,x
	0x7E: {modeAbsoluteX, opROR, 7}, // ROR a,x
	0x7F: {modeAbsoluteX, opRRA, 7}, // RRA a,x
	0x80: {modeImmediate, opNOP, 2}, // NOP #i
	0x81: {modeIndirectX, opSTA, 6}, // STA (d,x)
	0x82: {modeImmediate, opNOP, 2}, // NOP #i
	0x83: {modeIndirectX, opSAX, 6}, // SAX (d,x)
	0x84: {modeZP, opSTY, 3}, // STY d
	0x85: {modeZP, opSTA, 3}, // STA d
	0x86: {modeZP, opSTX, 3}, // STX d
	0x87: {modeZP, opSAX, 3}, // SAX d
	0x88: {modeImplied, opDEY, 2}, // DEY
	0x89: {modeImmediate, opNOP, 2}, // NOP #i
	0x8A: {modeImplied, opTXA, 2}, // TXA
	0x8B: {modeImmediate, opANE, 2}, // ANE #i
	0x8C: {modeAbsolute, opSTY, 4}, // STY a
	0x8D: {modeAbsolute, opSTA, 4}, // STA a
	0x8E: {modeAbsolute, opSTX, 4}, // STX a
	0x8F: {modeAbsolute, opSAX, 4}, // SAX a
	0x90: {modeRelative, opBCC, 2}, // BCC *+r
	0x91: {modeIndirectY, opSTA, 6}, // STA (d),y
	0x92: {modeImplied, opJAM, 2}, // JAM
	0x93: {modeIndirectY, opSHA, 6}, // SHA (d),y
	0x94: {modeZPX, opSTY, 4}, // STY d,x
	0x95: {modeZPX, opSTA, 4}, // STA d,x
	0x96: {modeZPY, opSTX, 4}, // STX d,y
	0x97: {modeZPY, opSAX, 4}, // SAX d,y
	0x98: {modeImplied, opTYA, 2}, // TYA
	0x99: {modeAbsoluteY, opSTA, 5}, // STA a,y
	0x9A: {modeImplied, opTXS, 2}, // TXS
	0x9B: {modeAbsoluteY, opTAS, 5}, // TAS a,y
	0x9C: {modeAbsoluteX, opSHY, 5}, // SHY a,x
	0x9D: {modeAbsoluteX, opSTA, 5}, // STA a,x
	0x9E: {modeAbsoluteY, opSHX, 5}, // SHX a,y
	0x9F: {modeAbsoluteY, opSHA, 5}, // SHA a,y
	0xA0: {modeImmediate, opLDY, 2}, // LDY #i
	0xA1: {modeIndirectX, opLDA, 6}, // LDA (d,x)
	0xA2: {modeImmediate, opLDX, 2}, // LDX #i
	0xA3: {modeIndirectX, opLAX, 6}, // LAX (d,x)
	0xA4: {modeZP, opLDY, 3}, // LDY d
	0xA5: {modeZP, opLDA, 3}, // LDA d
	0xA6: {modeZP, opLDX, 3}, // LDX d
	0xA7: {modeZP, opLAX, 3}, // LAX d
	0xA8: {modeImplied, opTAY, 2}, // TAY
	0xA9: {modeImmediate, opLDA, 2}, // LDA #i
	0xAA: {modeImplied, opTAX, 2}, // TAX
	0xAB: {modeImmediate, opLXA, 2}, // LXA #i
	0xAC: {modeAbsolute, opLDY, 4}, // LDY a
	0xAD: {modeAbsolute, opLDA, 4}, // LDA a
	0xAE: {modeAbsolute, opLDX, 4}, // LDX a
	0xAF: {modeAbsolute, opLAX, 4}, // LAX a
	0xB0: {modeRelative, opBCS, 2}, // BCS *+r
	0xB1: {modeIndirectY, opLDA, 5}, // LDA (d),y
	0xB2: {modeImplied, opJAM, 2}, // JAM
	0xB3: {modeIndirectY, opLAX, 5}, // LAX (d),y
	0xB4: {modeZPX, opLDY, 4}, // LDY d,x
	0xB5: {modeZPX, opLDA, 4}, // LDA d,x
	0xB6: {modeZPY, opLDX, 4}, // LDX d,y
	0xB7: {modeZPY, opLAX, 4}, // LAX d,y
	0xB8: {modeImplied, opCLV, 2}, // CLV
	0xB9: {modeAbsoluteY, opLDA, 4}, // LDA a,y
	0xBA: {modeImplied, opTSX, 2}, // TSX
	0xBB: {modeAbsoluteY, opLAS, 4}, // LAS a,y
	0xBC: {modeAbsoluteX, opLDY, 4}, // LDY a,x
	0xBD: {modeAbsoluteX, opLDA, 4}, // LDA a,x
	0xBE: {modeAbsoluteY, opLDX, 4}, // LDX a,y
	0xBF: {modeAbsoluteY, opLAX, 4}, // LAX a,y
	0xC0: {modeImmediate, opCPY, 2}, // CPY #i
	0xC1: {modeIndirectX, opCMP, 6}, // CMP (d,x)
	0xC2: {modeImmediate, opNOP, 2}, // NOP #i
	0xC3: {modeIndirectX, opDCP, 8}, // DCP (d,x)
	0xC4: {modeZP, opCPY, 3}, // CPY d
	0xC5: {modeZP, opCMP, 3}, // CMP d
	0xC6: {modeZP, opDEC, 5}, // DEC d
	0xC7: {modeZP, opDCP, 5}, // DCP d
	0xC8: {modeImplied, opINY, 2}, // INY
	0xC9: {modeImmediate, opCMP, 2}, // CMP #i
	0xCA: {modeImplied, opDEX, 2}, // DEX
	0xCB: {modeImmediate, opSBX, 2}, // SBX #i
	0xCC: {modeAbsolute, opCPY, 4}, // CPY a
	0xCD: {modeAbsolute, opCMP, 4}, // CMP a
	0xCE: {modeAbsolute, opDEC, 6}, // DEC a
	0xCF: {modeAbsolute, opDCP, 6}, // DCP a
	0xD0: {modeRelative, opBNE, 2}, // BNE *+r
	0xD1: {modeIndirectY, opCMP, 5}, // CMP (d),y
	0xD2: {modeImplied, opJAM, 2}, // JAM
	0xD3: {modeIndirectY, opDCP, 8}, // DCP (d),y
	0xD4: {modeZPX, opNOP, 4}, // NOP d,x
	0xD5: {modeZPX, opCMP, 4}, // CMP d,x
	0xD6: {modeZPX, opDEC, 6}, // DEC d,x
	0xD7: {modeZPX, opDCP, 6}, // DCP d,x
	0xD8: {modeImplied, opCLD, 2}, // CLD
	0xD9: {modeAbsoluteY, opCMP, 4}, // CMP a,y
	0xDA: {modeImplied, opNOP, 2}, // NOP
	0xDB: {modeAbsoluteY, opDCP, 7}, // DCP a,y
	0xDC: {modeAbsoluteX, opNOP, 4}, // NOP a,x
	0xDD: {modeAbsoluteX, opCMP, 4}, // CMP a,x
	0xDE: {modeAbsoluteX, opDEC, 7}, // DEC a,x
	0xDF: {modeAbsoluteX, opDCP, 7}, // DCP a,x
	0xE0: {modeImmediate, opCPX, 2}, // CPX #i
	0xE1: {modeIndirectX, opSBC, 6}, // SBC (d,x)
	0xE2: {modeImmediate, opNOP, 2}, // NOP #i
	0xE3: {modeIndirectX, opISC, 8}, // ISC (d,x)
	0xE4: {modeZP, opCPX, 3}, // CPX d
	0xE5: {modeZP, opSBC, 3}, // SBC d
	0xE6: {modeZP, opINC, 5}, // INC d
	0xE7: {modeZP, opISC, 5}, // ISC d
	0xE8: {modeImplied, opINX, 2}, // INX
	0xE9: {modeImmediate, opSBC, 2}, // SBC #i
	0xEA: {modeImplied, opNOP, 2}, // NOP
	0xEB: {modeImmediate, opSBC, 2}, // SBC #i
	0xEC: {modeAbsolute, opCPX, 4}, // CPX a
	0xED: {modeAbsolute, opSBC, 4}, // SBC a
	0xEE: {modeAbsolute, opINC, 6}, // INC a
	0xEF: {modeAbsolute, opISC, 6}, // ISC a
	0xF0: {modeRelative, opBEQ, 2}, // BEQ *+r
	0xF1: {modeIndirectY, opSBC, 5}, // SBC (d),y
	0xF2: {modeImplied, opJAM, 2}, // JAM
	0xF3: {modeIndirectY, opISC, 8}, // ISC (d),y
	0xF4: {modeZPX, opNOP, 4}, // NOP d,x
	0xF5: {modeZPX, opSBC, 4}, // SBC d,x
	0xF6: {modeZPX, opINC, 6}, // INC d,x
	0xF7: {modeZPX, opISC, 6}, // ISC d,x
	0xF8: {modeImplied, opSED, 2}, // SED
	0xF9: {modeAbsoluteY, opSBC, 4}, // SBC a,y
	0xFA: {modeImplied, opNOP, 2}, // NOP
	0xFB: {modeAbsoluteY, opISC, 7}, // ISC a,y
	0xFC: {modeAbsoluteX, opNOP, 4}, // NOP a,x
	0xFD: {modeAbsoluteX, opSBC, 4}, // SBC a,x
	0xFE: {modeAbsoluteX, opINC, 7}, // INC a,x
	0xFF: {modeAbsoluteX, opISC, 7}, // ISC a,x
}
