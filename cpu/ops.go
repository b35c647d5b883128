// Addressing modes and operations for the dispatch table. Modes compute
// p.effectiveAddr (and p.penaltyAddr on an indexed page cross); operations
// act on it. Accumulator mode instructions route through getValue/putValue
// so RMW operations don't care where the operand lives.
package cpu

// getValue returns the operand for the current instruction.
func (p *Chip) getValue() uint8 {
	if p.accMode {
		return p.A
	}
	return p.ram.Read(p.effectiveAddr)
}

// putValue stores an RMW result back where the operand came from.
func (p *Chip) putValue(val uint8) {
	if p.accMode {
		p.A = val
		return
	}
	p.ram.Write(p.effectiveAddr, val)
}

// pageCrossed reports whether base and base+index land in different
// 256 byte pages.
func pageCrossed(base, effective uint16) bool {
	return base&0xFF00 != effective&0xFF00
}

// modeImplied - no operand.
func modeImplied(p *Chip) {}

// modeAccumulator - operand is A.
func modeAccumulator(p *Chip) {
	p.accMode = true
}

// modeImmediate - #i
func modeImmediate(p *Chip) {
	p.effectiveAddr = p.PC
	p.PC++
}

// modeZP - d
func modeZP(p *Chip) {
	p.effectiveAddr = uint16(p.ram.Read(p.PC))
	p.PC++
}

// modeZPX - d,x (wraps within the zero page)
func modeZPX(p *Chip) {
	p.effectiveAddr = uint16(p.ram.Read(p.PC) + p.X)
	p.PC++
}

// modeZPY - d,y (wraps within the zero page)
func modeZPY(p *Chip) {
	p.effectiveAddr = uint16(p.ram.Read(p.PC) + p.Y)
	p.PC++
}

// modeRelative - *+r for branches. The signed offset is stashed for the
// branch ops; the penalty logic lives there since it depends on taken-ness.
func modeRelative(p *Chip) {
	p.relAddr = uint16(int16(int8(p.ram.Read(p.PC))))
	p.PC++
}

// modeAbsolute - a
func modeAbsolute(p *Chip) {
	p.effectiveAddr = p.readWord(p.PC)
	p.PC += 2
}

// modeAbsoluteX - a,x
func modeAbsoluteX(p *Chip) {
	base := p.readWord(p.PC)
	p.PC += 2
	p.effectiveAddr = base + uint16(p.X)
	if pageCrossed(base, p.effectiveAddr) {
		p.penaltyAddr = true
	}
}

// modeAbsoluteY - a,y
func modeAbsoluteY(p *Chip) {
	base := p.readWord(p.PC)
	p.PC += 2
	p.effectiveAddr = base + uint16(p.Y)
	if pageCrossed(base, p.effectiveAddr) {
		p.penaltyAddr = true
	}
}

// modeIndirect - (a) for JMP only. Reproduces the NMOS page wrap bug:
// a pointer at $xxFF fetches its high byte from $xx00.
func modeIndirect(p *Chip) {
	ptr := p.readWord(p.PC)
	p.PC += 2
	lo := p.ram.Read(ptr)
	hi := p.ram.Read((ptr & 0xFF00) | uint16(uint8(ptr&0xFF)+1))
	p.effectiveAddr = uint16(hi)<<8 | uint16(lo)
}

// modeIndirectX - (d,x)
func modeIndirectX(p *Chip) {
	zp := p.ram.Read(p.PC) + p.X
	p.PC++
	lo := p.ram.Read(uint16(zp))
	hi := p.ram.Read(uint16(zp + 1))
	p.effectiveAddr = uint16(hi)<<8 | uint16(lo)
}

// modeIndirectY - (d),y
func modeIndirectY(p *Chip) {
	zp := p.ram.Read(p.PC)
	p.PC++
	lo := p.ram.Read(uint16(zp))
	hi := p.ram.Read(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)
	p.effectiveAddr = base + uint16(p.Y)
	if pageCrossed(base, p.effectiveAddr) {
		p.penaltyAddr = true
	}
}

// performBranch applies the taken branch penalties: +1 for taking it,
// +1 more if the destination sits on a different page than the
// instruction following the branch.
func (p *Chip) performBranch() {
	oldPC := p.PC
	p.PC += p.relAddr
	p.cycles++
	if pageCrossed(oldPC, p.PC) {
		p.cycles++
	}
}

// opADC implements ADC including decimal mode (one extra cycle).
func opADC(p *Chip) {
	p.penaltyOp = true
	if p.D {
		p.cycles++
	}
	p.adc(p.getValue())
}

// opSBC implements SBC including decimal mode (one extra cycle).
func opSBC(p *Chip) {
	p.penaltyOp = true
	if p.D {
		p.cycles++
	}
	p.sbc(p.getValue())
}

func opAND(p *Chip) {
	p.penaltyOp = true
	p.loadRegister(&p.A, p.A&p.getValue())
}

func opORA(p *Chip) {
	p.penaltyOp = true
	p.loadRegister(&p.A, p.A|p.getValue())
}

func opEOR(p *Chip) {
	p.penaltyOp = true
	p.loadRegister(&p.A, p.A^p.getValue())
}

func opASL(p *Chip) {
	val := p.getValue()
	p.carryCheck(uint16(val) << 1)
	val <<= 1
	p.putValue(val)
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func opLSR(p *Chip) {
	val := p.getValue()
	p.C = val&0x01 != 0x00
	val >>= 1
	p.putValue(val)
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func opROL(p *Chip) {
	val := p.getValue()
	carry := uint8(0x00)
	if p.C {
		carry = 0x01
	}
	p.carryCheck(uint16(val) << 1)
	val = val<<1 | carry
	p.putValue(val)
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func opROR(p *Chip) {
	val := p.getValue()
	carry := uint8(0x00)
	if p.C {
		carry = 0x80
	}
	p.C = val&0x01 != 0x00
	val = val>>1 | carry
	p.putValue(val)
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func opINC(p *Chip) {
	val := p.getValue() + 1
	p.putValue(val)
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func opDEC(p *Chip) {
	val := p.getValue() - 1
	p.putValue(val)
	p.zeroCheck(val)
	p.negativeCheck(val)
}

// compare implements the logic for all CMP/CPX/CPY instructions.
func (p *Chip) compare(reg uint8, val uint8) {
	p.zeroCheck(reg - val)
	p.negativeCheck(reg - val)
	// A-M done as 2's complement addition by ones complement and add 1.
	// This way we get valid sign extension and a carry bit test.
	p.carryCheck(uint16(reg) + uint16(^val) + uint16(1))
}

func opCMP(p *Chip) {
	p.penaltyOp = true
	p.compare(p.A, p.getValue())
}

func opCPX(p *Chip) {
	p.compare(p.X, p.getValue())
}

func opCPY(p *Chip) {
	p.compare(p.Y, p.getValue())
}

func opBIT(p *Chip) {
	val := p.getValue()
	p.zeroCheck(p.A & val)
	p.negativeCheck(val)
	p.V = val&P_OVERFLOW != 0x00
}

func opLDA(p *Chip) {
	p.penaltyOp = true
	p.loadRegister(&p.A, p.getValue())
}

func opLDX(p *Chip) {
	p.penaltyOp = true
	p.loadRegister(&p.X, p.getValue())
}

func opLDY(p *Chip) {
	p.penaltyOp = true
	p.loadRegister(&p.Y, p.getValue())
}

func opSTA(p *Chip) {
	p.ram.Write(p.effectiveAddr, p.A)
}

func opSTX(p *Chip) {
	p.ram.Write(p.effectiveAddr, p.X)
}

func opSTY(p *Chip) {
	p.ram.Write(p.effectiveAddr, p.Y)
}

func opTAX(p *Chip) { p.loadRegister(&p.X, p.A) }
func opTAY(p *Chip) { p.loadRegister(&p.Y, p.A) }
func opTXA(p *Chip) { p.loadRegister(&p.A, p.X) }
func opTYA(p *Chip) { p.loadRegister(&p.A, p.Y) }
func opTSX(p *Chip) { p.loadRegister(&p.X, p.S) }
func opTXS(p *Chip) { p.S = p.X }

func opINX(p *Chip) { p.loadRegister(&p.X, p.X+1) }
func opINY(p *Chip) { p.loadRegister(&p.Y, p.Y+1) }
func opDEX(p *Chip) { p.loadRegister(&p.X, p.X-1) }
func opDEY(p *Chip) { p.loadRegister(&p.Y, p.Y-1) }

func opCLC(p *Chip) { p.C = false }
func opSEC(p *Chip) { p.C = true }
func opCLI(p *Chip) { p.I = false }
func opSEI(p *Chip) { p.I = true }
func opCLD(p *Chip) { p.D = false }
func opSED(p *Chip) { p.D = true }
func opCLV(p *Chip) { p.V = false }

func opBCC(p *Chip) {
	if !p.C {
		p.performBranch()
	}
}

func opBCS(p *Chip) {
	if p.C {
		p.performBranch()
	}
}

func opBEQ(p *Chip) {
	if p.Z {
		p.performBranch()
	}
}

func opBNE(p *Chip) {
	if !p.Z {
		p.performBranch()
	}
}

func opBMI(p *Chip) {
	if p.N {
		p.performBranch()
	}
}

func opBPL(p *Chip) {
	if !p.N {
		p.performBranch()
	}
}

func opBVC(p *Chip) {
	if !p.V {
		p.performBranch()
	}
}

func opBVS(p *Chip) {
	if p.V {
		p.performBranch()
	}
}

func opJMP(p *Chip) {
	p.PC = p.effectiveAddr
}

func opJSR(p *Chip) {
	// The pushed PC points at the last byte of the JSR; RTS adds one.
	p.push16(p.PC - 1)
	p.PC = p.effectiveAddr
}

func opRTS(p *Chip) {
	p.PC = p.pull16() + 1
}

func opRTI(p *Chip) {
	p.SetStatus(p.pull8())
	p.PC = p.pull16()
}

func opBRK(p *Chip) {
	// The byte after BRK is padding: the pushed return address skips it.
	p.PC++
	p.push16(p.PC)
	p.push8(p.Status() | P_B)
	p.I = true
	p.PC = p.readWord(IRQ_VECTOR)
}

func opPHA(p *Chip) { p.push8(p.A) }

func opPLA(p *Chip) { p.loadRegister(&p.A, p.pull8()) }

func opPHP(p *Chip) {
	// PHP frames always push B set.
	p.push8(p.Status() | P_B)
}

func opPLP(p *Chip) { p.SetStatus(p.pull8()) }

func opNOP(p *Chip) {
	// The documented NOP plus the illegal read NOPs. Setting the opcode
	// penalty makes the a,x variants pay for a page cross like other reads.
	p.penaltyOp = true
}

func opJAM(p *Chip) {
	// Freeze. PC stays on the JAM opcode and further steps consume nothing.
	p.PC--
	p.halted = true
}

// Undocumented opcodes. Semantics follow the descriptions in
// http://www.ffd2.com/fridge/docs/6502-NMOS.extra.opcodes and
// http://nesdev.com/6502_cpu.txt as exercised by the Lorenz suite.

// opSLO - ASL the operand then ORA it into A.
func opSLO(p *Chip) {
	val := p.getValue()
	p.carryCheck(uint16(val) << 1)
	val <<= 1
	p.putValue(val)
	p.loadRegister(&p.A, p.A|val)
}

// opRLA - ROL the operand then AND it into A.
func opRLA(p *Chip) {
	val := p.getValue()
	carry := uint8(0x00)
	if p.C {
		carry = 0x01
	}
	p.carryCheck(uint16(val) << 1)
	val = val<<1 | carry
	p.putValue(val)
	p.loadRegister(&p.A, p.A&val)
}

// opSRE - LSR the operand then EOR it into A.
func opSRE(p *Chip) {
	val := p.getValue()
	p.C = val&0x01 != 0x00
	val >>= 1
	p.putValue(val)
	p.loadRegister(&p.A, p.A^val)
}

// opRRA - ROR the operand then ADC it into A.
func opRRA(p *Chip) {
	val := p.getValue()
	carry := uint8(0x00)
	if p.C {
		carry = 0x80
	}
	p.C = val&0x01 != 0x00
	val = val>>1 | carry
	p.putValue(val)
	p.adc(val)
}

// adc is the ADC core shared with RRA. BCD correction per
// http://6502.org/tutorials/decimal_mode.html
func (p *Chip) adc(val uint8) {
	carry := uint8(0x00)
	if p.C {
		carry = 0x01
	}
	if p.D {
		aL := (p.A & 0x0F) + (val & 0x0F) + carry
		if aL >= 0x0A {
			aL = ((aL + 0x06) & 0x0F) + 0x10
		}
		sum := uint16(p.A&0xF0) + uint16(val&0xF0) + uint16(aL)
		if sum >= 0xA0 {
			sum += 0x60
		}
		seq := (p.A & 0xF0) + (val & 0xF0) + aL
		bin := p.A + val + carry
		p.overflowCheck(p.A, val, seq)
		p.carryCheck(sum)
		p.negativeCheck(seq)
		p.zeroCheck(bin)
		p.A = uint8(sum & 0xFF)
		return
	}
	sum := p.A + val + carry
	p.overflowCheck(p.A, val, sum)
	p.carryCheck(uint16(p.A) + uint16(val) + uint16(carry))
	p.loadRegister(&p.A, sum)
}

// sbc is the SBC core shared with ISC.
func (p *Chip) sbc(val uint8) {
	carry := uint8(0x00)
	if p.C {
		carry = 0x01
	}
	if p.D {
		aL := int16(p.A&0x0F) - int16(val&0x0F) + int16(carry) - 1
		if aL < 0x00 {
			aL = ((aL - 0x06) & 0x0F) - 0x10
		}
		sum := int16(p.A&0xF0) - int16(val&0xF0) + aL
		if sum < 0x0000 {
			sum -= 0x60
		}
		bin := p.A + ^val + carry
		p.overflowCheck(p.A, ^val, bin)
		p.negativeCheck(bin)
		p.carryCheck(uint16(p.A) + uint16(^val) + uint16(carry))
		p.zeroCheck(bin)
		p.A = uint8(sum & 0xFF)
		return
	}
	inv := ^val
	sum := p.A + inv + carry
	p.overflowCheck(p.A, inv, sum)
	p.carryCheck(uint16(p.A) + uint16(inv) + uint16(carry))
	p.loadRegister(&p.A, sum)
}

// opSAX - store A AND X.
func opSAX(p *Chip) {
	p.ram.Write(p.effectiveAddr, p.A&p.X)
}

// opLAX - load A and X with the same value.
func opLAX(p *Chip) {
	p.penaltyOp = true
	val := p.getValue()
	p.loadRegister(&p.A, val)
	p.loadRegister(&p.X, val)
}

// opDCP - DEC the operand then CMP with A.
func opDCP(p *Chip) {
	val := p.getValue() - 1
	p.putValue(val)
	p.compare(p.A, val)
}

// opISC - INC the operand then SBC it from A.
func opISC(p *Chip) {
	val := p.getValue() + 1
	p.putValue(val)
	p.sbc(val)
}

// opANC - AND immediate then copy N into C.
func opANC(p *Chip) {
	p.loadRegister(&p.A, p.A&p.getValue())
	p.C = p.N
}

// opALR - AND immediate then LSR A.
func opALR(p *Chip) {
	p.loadRegister(&p.A, p.A&p.getValue())
	p.C = p.A&0x01 != 0x00
	p.loadRegister(&p.A, p.A>>1)
}

// opARR - AND immediate then ROR with the odd flag handling the ALU's
// BCD fixups produce. Implemented as described in http://nesdev.com/6502_cpu.txt
func opARR(p *Chip) {
	t := p.A & p.getValue()
	p.loadRegister(&p.A, t)
	carry := uint8(0x00)
	if p.C {
		carry = 0x80
	}
	p.loadRegister(&p.A, p.A>>1|carry)

	if p.D {
		// V set if bit 6 changed state between the AND and the rotate.
		p.V = (t^p.A)&0x40 != 0x00
		ah := t >> 4
		al := t & 0x0F
		if al+(al&0x01) > 5 {
			p.A = (p.A & 0xF0) | ((p.A + 6) & 0x0F)
		}
		p.C = ah+(ah&0x01) > 5
		if p.C {
			p.A += 0x60
		}
		return
	}
	// C is bit 6, V is bit 5 xor bit 6.
	p.C = p.A&0x40 != 0x00
	p.V = ((p.A&0x40)>>6)^((p.A&0x20)>>5) != 0x00
}

// opANE - the unstable (A | magic) & X & #i with the commonly cited 0xEE magic.
// http://visual6502.org/wiki/index.php?title=6502_Opcode_8B_(XAA,_ANE)
func opANE(p *Chip) {
	p.loadRegister(&p.A, (p.A|0xEE)&p.X&p.getValue())
}

// opLXA - the unstable (A | magic) & #i into both A and X.
func opLXA(p *Chip) {
	val := (p.A | 0xEE) & p.getValue()
	p.loadRegister(&p.A, val)
	p.loadRegister(&p.X, val)
}

// opSBX - X = (A AND X) - #i with CMP style carry.
func opSBX(p *Chip) {
	val := p.getValue()
	t := p.A & p.X
	p.compare(t, val)
	p.X = t - val
}

// shStore implements the unstable SHA/SHX/SHY stores which AND the
// source with the high byte of the target address plus one.
func (p *Chip) shStore(src uint8) {
	p.ram.Write(p.effectiveAddr, src&uint8((p.effectiveAddr>>8)+1))
}

func opSHA(p *Chip) { p.shStore(p.A & p.X) }
func opSHX(p *Chip) { p.shStore(p.X) }
func opSHY(p *Chip) { p.shStore(p.Y) }

// opTAS - S = A AND X then the SHA store.
func opTAS(p *Chip) {
	p.S = p.A & p.X
	p.shStore(p.A & p.X)
}

// opLAS - A, X and S all load S AND the operand.
func opLAS(p *Chip) {
	p.penaltyOp = true
	p.S = p.S & p.getValue()
	p.loadRegister(&p.X, p.S)
	p.loadRegister(&p.A, p.S)
}
