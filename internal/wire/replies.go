package wire

import (
	"encoding/binary"

	"depthbook/internal/symbol"
)

// Ack reports whether a NewOrder/CancelOrder/ModifyOrder command succeeded.
type Ack struct {
	OK bool
}

func (a Ack) Serialize() []byte {
	buf := make([]byte, AckReportLen)
	binary.BigEndian.PutUint16(buf[0:2], uint16(AckReport))
	if a.OK {
		buf[2] = 1
	}
	return buf
}

func ParseAck(buf []byte) (Ack, error) {
	if len(buf) < AckReportLen || ReportType(binary.BigEndian.Uint16(buf[0:2])) != AckReport {
		return Ack{}, ErrInvalidMessageType
	}
	return Ack{OK: buf[2] != 0}, nil
}

// ErrorMsg reports a rejected command's reason as plain text.
type ErrorMsg struct {
	Reason string
}

func (e ErrorMsg) Serialize() []byte {
	buf := make([]byte, ErrorReportHeaderLen+len(e.Reason))
	binary.BigEndian.PutUint16(buf[0:2], uint16(ErrorReport))
	binary.BigEndian.PutUint32(buf[2:6], uint32(len(e.Reason)))
	copy(buf[ErrorReportHeaderLen:], e.Reason)
	return buf
}

func ParseErrorMsg(buf []byte) (ErrorMsg, error) {
	if len(buf) < ErrorReportHeaderLen || ReportType(binary.BigEndian.Uint16(buf[0:2])) != ErrorReport {
		return ErrorMsg{}, ErrInvalidMessageType
	}
	n := binary.BigEndian.Uint32(buf[2:6])
	if len(buf) < ErrorReportHeaderLen+int(n) {
		return ErrorMsg{}, ErrMessageTooShort
	}
	return ErrorMsg{Reason: string(buf[ErrorReportHeaderLen : ErrorReportHeaderLen+int(n)])}, nil
}

// BookSnapshot is the reply to a QueryTop request: up to depth (px, qty)
// levels, best price first.
type BookSnapshot struct {
	Levels []symbol.LevelSummary
}

func (b BookSnapshot) Serialize() []byte {
	buf := make([]byte, BookReportHeaderLen+len(b.Levels)*BookReportEntryLen)
	binary.BigEndian.PutUint16(buf[0:2], uint16(BookReport))
	binary.BigEndian.PutUint32(buf[2:6], uint32(len(b.Levels)))

	offset := BookReportHeaderLen
	for _, lvl := range b.Levels {
		binary.BigEndian.PutUint64(buf[offset:offset+8], uint64(lvl.Px))
		binary.BigEndian.PutUint64(buf[offset+8:offset+16], uint64(lvl.Qty))
		offset += BookReportEntryLen
	}
	return buf
}

func ParseBookSnapshot(buf []byte) (BookSnapshot, error) {
	if len(buf) < BookReportHeaderLen || ReportType(binary.BigEndian.Uint16(buf[0:2])) != BookReport {
		return BookSnapshot{}, ErrInvalidMessageType
	}
	n := int(binary.BigEndian.Uint32(buf[2:6]))
	if len(buf) < BookReportHeaderLen+n*BookReportEntryLen {
		return BookSnapshot{}, ErrMessageTooShort
	}

	levels := make([]symbol.LevelSummary, n)
	offset := BookReportHeaderLen
	for i := 0; i < n; i++ {
		levels[i] = symbol.LevelSummary{
			Px:  int64(binary.BigEndian.Uint64(buf[offset : offset+8])),
			Qty: int64(binary.BigEndian.Uint64(buf[offset+8 : offset+16])),
		}
		offset += BookReportEntryLen
	}
	return BookSnapshot{Levels: levels}, nil
}
