package board

import "time"

// DefaultAddress is the I2C address of the board firmware (7-bit).
const DefaultAddress = 0x04

// Firmware command opcodes. The opcode space is closed; the firmware ignores
// frames with unknown opcodes.
const (
	cmdDigitalRead    byte = 1
	cmdDigitalWrite   byte = 2
	cmdAnalogRead     byte = 3
	cmdAnalogWrite    byte = 4
	cmdPinMode        byte = 5
	cmdUltrasonicRead byte = 7
	cmdVersion        byte = 8

	cmdDustRead       byte = 10
	cmdEncoderRead    byte = 11
	cmdFlowRead       byte = 12
	cmdFlowDisable    byte = 13
	cmdDustEnable     byte = 14
	cmdDustDisable    byte = 15
	cmdEncoderEnable  byte = 16
	cmdEncoderDisable byte = 17
	cmdFlowEnable     byte = 18

	cmdAccelXYZ  byte = 20
	cmdIRRead    byte = 21
	cmdIRRecvPin byte = 22

	cmdRTCGetTime byte = 30
	cmdDHTRead    byte = 40
)

// LED bar opcodes.
const (
	cmdLEDBarInit      byte = 50
	cmdLEDBarOrient    byte = 51
	cmdLEDBarLevel     byte = 52
	cmdLEDBarSetOne    byte = 53
	cmdLEDBarToggleOne byte = 54
	cmdLEDBarSet       byte = 55
	cmdLEDBarGet       byte = 56
)

// 4-digit display opcodes.
const (
	cmdFourDigitInit       byte = 70
	cmdFourDigitBrightness byte = 71
	cmdFourDigitValue      byte = 72
	cmdFourDigitValueZeros byte = 73
	cmdFourDigitDigit      byte = 74
	cmdFourDigitSegment    byte = 75
	cmdFourDigitScore      byte = 76
	cmdFourDigitMonitor    byte = 77
	cmdFourDigitAllOn      byte = 78
	cmdFourDigitAllOff     byte = 79
)

// Chainable RGB LED opcodes.
const (
	cmdStoreColor byte = 90
	cmdRGBInit    byte = 91
	cmdRGBTest    byte = 92
	cmdRGBPattern byte = 93
	cmdRGBModulo  byte = 94
	cmdRGBLevel   byte = 95
)

// Settle delays between the command write and the follow-up read (or the next
// command for fire-and-forget writes). Empirical values mandated by the
// firmware's acquisition latency; conservative and fixed.
const (
	settleNone    time.Duration = 0
	settleDisplay               = 50 * time.Millisecond
	settleRead                  = 100 * time.Millisecond
	settleCounter               = 200 * time.Millisecond
	settleDHT                   = 600 * time.Millisecond
)

// settleDelay returns the minimum delay for a command. Reading the response
// earlier risks a stale or malformed block.
func settleDelay(cmd byte) time.Duration {
	switch cmd {
	case cmdDigitalRead, cmdAnalogRead, cmdVersion, cmdAccelXYZ, cmdIRRead, cmdRTCGetTime:
		return settleRead
	case cmdUltrasonicRead, cmdLEDBarGet,
		cmdDustRead, cmdDustEnable, cmdDustDisable,
		cmdEncoderRead, cmdEncoderEnable, cmdEncoderDisable,
		cmdFlowRead, cmdFlowEnable, cmdFlowDisable:
		return settleCounter
	case cmdDHTRead:
		return settleDHT
	case cmdFourDigitBrightness, cmdFourDigitValue, cmdFourDigitValueZeros,
		cmdFourDigitDigit, cmdFourDigitSegment, cmdFourDigitScore,
		cmdFourDigitAllOn, cmdFourDigitAllOff,
		cmdStoreColor, cmdRGBInit, cmdRGBTest, cmdRGBPattern, cmdRGBModulo, cmdRGBLevel:
		return settleDisplay
	default:
		return settleNone
	}
}

// monitorDelay is the settle delay of the display monitor command, driven by
// the caller-supplied sampling window rather than a fixed constant.
func monitorDelay(seconds int) time.Duration {
	return time.Duration(seconds)*time.Second + settleDisplay
}

// buildFrame produces the fixed 4-byte command frame: opcode followed by up
// to three parameters, zero-padded. Parameters are truncated to their low
// 8 bits; range validation is the caller's job.
func buildFrame(cmd byte, params ...int) [4]byte {
	frame := [4]byte{cmd}
	for i, p := range params {
		frame[i+1] = byte(p)
	}
	return frame
}
