package via

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// sink collects serial output bytes.
type sink struct {
	out []uint8
}

func (s *sink) SerialOut(b uint8) {
	s.out = append(s.out, b)
}

// lcd records Command/Data notifications in order.
type lcd struct {
	commands []uint8
	data     []uint8
}

func (l *lcd) Command(b uint8) { l.commands = append(l.commands, b) }
func (l *lcd) Data(b uint8)    { l.data = append(l.data, b) }

func TestTimers(t *testing.T) {
	v := Init(&ChipDef{})

	// T1 = 3 ticks.
	v.Write(REG_T1CL, 0x03)
	v.Write(REG_T1CH, 0x00)
	// T2 = 5 ticks.
	v.Write(REG_T2CL, 0x05)
	v.Write(REG_T2CH, 0x00)

	for i := 0; i < 2; i++ {
		v.Tick()
	}
	assert.Zero(t, v.Read(REG_IFR)&kMASK_IFR_T1, "T1 early")
	v.Tick()
	assert.NotZero(t, v.Read(REG_IFR)&kMASK_IFR_T1, "T1 at zero")
	assert.Zero(t, v.Read(REG_IFR)&kMASK_IFR_T2, "T2 early")
	v.Tick()
	v.Tick()
	assert.NotZero(t, v.Read(REG_IFR)&kMASK_IFR_T2, "T2 at zero")

	// IFR write-1-to-clear.
	v.Write(REG_IFR, kMASK_IFR_T1)
	assert.Zero(t, v.Read(REG_IFR)&kMASK_IFR_T1)
	assert.NotZero(t, v.Read(REG_IFR)&kMASK_IFR_T2, "T2 flag survives T1 clear")
}

func TestTimerLatchLayout(t *testing.T) {
	v := Init(&ChipDef{})
	// Writing T1CH loads the full latch into the counter and clears IFR6.
	v.Write(REG_T1CL, 0x34)
	v.Write(REG_T1CH, 0x12)
	for i := 0; i < 0x1233; i++ {
		v.Tick()
	}
	assert.Zero(t, v.Read(REG_IFR)&kMASK_IFR_T1)
	v.Tick()
	assert.NotZero(t, v.Read(REG_IFR)&kMASK_IFR_T1)
}

func TestIERProtocol(t *testing.T) {
	v := Init(&ChipDef{})
	// Bit 7 set enables the written bits.
	v.Write(REG_IER, 0x80|kMASK_IFR_T1|kMASK_IFR_SR)
	assert.Equal(t, uint8(0x80|kMASK_IFR_T1|kMASK_IFR_SR), v.Read(REG_IER))
	// Bit 7 clear disables the written bits.
	v.Write(REG_IER, kMASK_IFR_SR)
	assert.Equal(t, uint8(0x80|kMASK_IFR_T1), v.Read(REG_IER))

	// Raised only when an enabled flag is pending.
	assert.False(t, v.Raised())
	v.Write(REG_T1CL, 0x01)
	v.Write(REG_T1CH, 0x00)
	v.Tick()
	assert.True(t, v.Raised())
}

func TestShiftRegisterTx(t *testing.T) {
	s := &sink{}
	v := Init(&ChipDef{Receiver: s})

	v.Write(REG_SR, 0xA5)
	for i := 0; i < 7; i++ {
		v.Tick()
	}
	assert.Empty(t, s.out, "byte early")
	assert.Zero(t, v.Read(REG_IFR)&kMASK_IFR_SR)
	v.Tick()
	require.Equal(t, []uint8{0xA5}, s.out)
	assert.NotZero(t, v.Read(REG_IFR)&kMASK_IFR_SR, "SR interrupt after 8 shifts")
}

func TestShiftRegisterRx(t *testing.T) {
	v := Init(&ChipDef{})
	v.RxByte(0x5A)
	assert.NotZero(t, v.Read(REG_IFR)&kMASK_IFR_SR)
	assert.Equal(t, uint8(0x5A), v.Read(REG_SR))
	// Reading consumed the byte and dropped the flag.
	assert.Zero(t, v.Read(REG_IFR)&kMASK_IFR_SR)
	assert.Zero(t, v.Read(REG_SR))
}

func TestPortBSerialConventions(t *testing.T) {
	s := &sink{}
	v := Init(&ChipDef{Receiver: s})

	// PB6 low with nothing buffered.
	assert.Zero(t, v.Read(REG_ORB)&kMASK_SERIAL_IN)
	v.SerialFeed([]uint8("Go"))
	assert.NotZero(t, v.Read(REG_ORB)&kMASK_SERIAL_IN)

	// ORA reads drain the ring.
	assert.Equal(t, uint8('G'), v.Read(REG_ORA))
	assert.Equal(t, uint8('o'), v.Read(REG_ORA))
	assert.Zero(t, v.Read(REG_ORB)&kMASK_SERIAL_IN)

	// PB7 write strobes ORA out as a character.
	v.Write(REG_ORA, 'X')
	v.Write(REG_ORB, kMASK_SERIAL_OUT)
	assert.Equal(t, []uint8{'X'}, s.out)
}

func TestLCDEnableEdge(t *testing.T) {
	l := &lcd{}
	v := Init(&ChipDef{Display: l})
	v.Write(REG_DDRA, 0xFF)
	v.Write(REG_DDRB, 0xFF)

	// Raise E with RS=1, RW=0, write the datum, drop E.
	v.Write(REG_ORA, kMASK_LCD_E|kMASK_LCD_RS)
	v.Write(REG_ORB, 0x48)
	v.Write(REG_ORA, kMASK_LCD_RS)

	require.Len(t, l.data, 1, "exactly one datum per falling edge")
	assert.Equal(t, uint8(0x48), l.data[0])
	assert.Empty(t, l.commands)

	// RS=0 routes to Command.
	v.Write(REG_ORB, 0x01)
	v.Write(REG_ORA, kMASK_LCD_E)
	v.Write(REG_ORA, 0x00)
	require.Len(t, l.commands, 1)
	assert.Equal(t, uint8(0x01), l.commands[0])

	// RW high suppresses the notification.
	v.Write(REG_ORA, kMASK_LCD_E|kMASK_LCD_RW)
	v.Write(REG_ORA, kMASK_LCD_RW)
	assert.Len(t, l.data, 1)
	assert.Len(t, l.commands, 1)
}

// One notification per falling edge no matter how many port writes
// happen while E stays high.
func TestLCDEdgeSingleNotification(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := &lcd{}
		v := Init(&ChipDef{Display: l})
		v.Write(REG_DDRA, 0xFF)
		v.Write(REG_DDRB, 0xFF)

		v.Write(REG_ORA, kMASK_LCD_E|kMASK_LCD_RS)
		writes := rapid.IntRange(1, 20).Draw(rt, "writes")
		var last uint8
		for i := 0; i < writes; i++ {
			last = rapid.Byte().Draw(rt, "b")
			v.Write(REG_ORB, last)
		}
		v.Write(REG_ORA, kMASK_LCD_RS)

		if len(l.data) != 1 {
			rt.Fatalf("got %d notifications want 1", len(l.data))
		}
		if l.data[0] != last {
			rt.Fatalf("notified %.2X want the final port B value %.2X", l.data[0], last)
		}
	})
}

func TestRegisterFile(t *testing.T) {
	v := Init(&ChipDef{})
	v.Write(REG_ACR, 0x18)
	assert.Equal(t, uint8(0x18), v.Read(REG_ACR))
	v.Write(REG_PCR, 0x22)
	assert.Equal(t, uint8(0x22), v.Read(REG_PCR))
	// IER always reads with bit 7 set.
	assert.NotZero(t, v.Read(REG_IER)&0x80)
}
