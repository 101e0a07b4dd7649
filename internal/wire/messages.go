// Package wire defines the binary framing used between a depthbook
// transport.Server and its clients. It is a thin, fixed-width protocol:
// every field is a big-endian integer, every message starts with a 2-byte
// type tag, and the only variable-length field is the length-prefixed
// reason string of an ErrorMsg reply (depthbook's domain is otherwise
// entirely int64 symbol/order/price/qty ids, unlike the teacher's string
// tickers and usernames).
package wire

import (
	"encoding/binary"
	"errors"

	"depthbook/internal/common"
)

var (
	ErrInvalidMessageType = errors.New("wire: invalid message type")
	ErrMessageTooShort    = errors.New("wire: message too short")
)

// MessageType tags the first 2 bytes of every request frame.
type MessageType uint16

const (
	NewOrder MessageType = iota
	CancelOrder
	ModifyOrder
	QueryTop
)

// ReportType tags the first 2 bytes of every reply frame.
type ReportType uint16

const (
	AckReport ReportType = iota
	ErrorReport
	BookReport
)

// Message format lengths. Request body lengths exclude the 2-byte type tag
// (it is stripped before these bodies are parsed); reply lengths include it.
const (
	HeaderLen             = 2
	NewOrderBodyLen       = 8 + 8 + 8 + 8 + 1 // symbol_id, order_id, px, qty, side
	CancelOrderBodyLen    = 8                 // order_id
	ModifyOrderBodyLen    = 8 + 8 + 8         // order_id, px, qty
	QueryTopBodyLen       = 8 + 1 + 4         // symbol_id, side, depth
	AckReportLen          = 2 + 1             // type, ok
	ErrorReportHeaderLen  = 2 + 4             // type, message length
	BookReportHeaderLen   = 2 + 4             // type, level count
	BookReportEntryLen    = 8 + 8             // px, qty
)

// Request is any parsed client-to-server frame.
type Request interface {
	GetType() MessageType
}

type NewOrderMessage struct {
	SymbolID common.SymbolID
	OrderID  int64
	Px       int64
	Qty      int64
	Side     common.Side
}

func (NewOrderMessage) GetType() MessageType { return NewOrder }

type CancelOrderMessage struct {
	OrderID int64
}

func (CancelOrderMessage) GetType() MessageType { return CancelOrder }

type ModifyOrderMessage struct {
	OrderID int64
	Px      int64
	Qty     int64
}

func (ModifyOrderMessage) GetType() MessageType { return ModifyOrder }

type QueryTopMessage struct {
	SymbolID common.SymbolID
	Side     common.Side
	Depth    int32
}

func (QueryTopMessage) GetType() MessageType { return QueryTop }

// ParseRequest dissects a raw frame into one of the Request types above.
func ParseRequest(buf []byte) (Request, error) {
	if len(buf) < HeaderLen {
		return nil, ErrMessageTooShort
	}
	typeOf := MessageType(binary.BigEndian.Uint16(buf[0:2]))
	body := buf[2:]

	switch typeOf {
	case NewOrder:
		return parseNewOrder(body)
	case CancelOrder:
		return parseCancelOrder(body)
	case ModifyOrder:
		return parseModifyOrder(body)
	case QueryTop:
		return parseQueryTop(body)
	default:
		return nil, ErrInvalidMessageType
	}
}

func parseNewOrder(body []byte) (NewOrderMessage, error) {
	if len(body) < NewOrderBodyLen {
		return NewOrderMessage{}, ErrMessageTooShort
	}
	return NewOrderMessage{
		SymbolID: common.SymbolID(int64(binary.BigEndian.Uint64(body[0:8]))),
		OrderID:  int64(binary.BigEndian.Uint64(body[8:16])),
		Px:       int64(binary.BigEndian.Uint64(body[16:24])),
		Qty:      int64(binary.BigEndian.Uint64(body[24:32])),
		Side:     common.Side(body[32]),
	}, nil
}

// Serialize encodes m for transmission; used by client-side callers.
func (m NewOrderMessage) Serialize() []byte {
	buf := make([]byte, HeaderLen+NewOrderBodyLen)
	binary.BigEndian.PutUint16(buf[0:2], uint16(NewOrder))
	binary.BigEndian.PutUint64(buf[2:10], uint64(int64(m.SymbolID)))
	binary.BigEndian.PutUint64(buf[10:18], uint64(m.OrderID))
	binary.BigEndian.PutUint64(buf[18:26], uint64(m.Px))
	binary.BigEndian.PutUint64(buf[26:34], uint64(m.Qty))
	buf[34] = byte(m.Side)
	return buf
}

func parseCancelOrder(body []byte) (CancelOrderMessage, error) {
	if len(body) < CancelOrderBodyLen {
		return CancelOrderMessage{}, ErrMessageTooShort
	}
	return CancelOrderMessage{OrderID: int64(binary.BigEndian.Uint64(body[0:8]))}, nil
}

func (m CancelOrderMessage) Serialize() []byte {
	buf := make([]byte, HeaderLen+CancelOrderBodyLen)
	binary.BigEndian.PutUint16(buf[0:2], uint16(CancelOrder))
	binary.BigEndian.PutUint64(buf[2:10], uint64(m.OrderID))
	return buf
}

func parseModifyOrder(body []byte) (ModifyOrderMessage, error) {
	if len(body) < ModifyOrderBodyLen {
		return ModifyOrderMessage{}, ErrMessageTooShort
	}
	return ModifyOrderMessage{
		OrderID: int64(binary.BigEndian.Uint64(body[0:8])),
		Px:      int64(binary.BigEndian.Uint64(body[8:16])),
		Qty:     int64(binary.BigEndian.Uint64(body[16:24])),
	}, nil
}

func (m ModifyOrderMessage) Serialize() []byte {
	buf := make([]byte, HeaderLen+ModifyOrderBodyLen)
	binary.BigEndian.PutUint16(buf[0:2], uint16(ModifyOrder))
	binary.BigEndian.PutUint64(buf[2:10], uint64(m.OrderID))
	binary.BigEndian.PutUint64(buf[10:18], uint64(m.Px))
	binary.BigEndian.PutUint64(buf[18:26], uint64(m.Qty))
	return buf
}

func parseQueryTop(body []byte) (QueryTopMessage, error) {
	if len(body) < QueryTopBodyLen {
		return QueryTopMessage{}, ErrMessageTooShort
	}
	return QueryTopMessage{
		SymbolID: common.SymbolID(int64(binary.BigEndian.Uint64(body[0:8]))),
		Side:     common.Side(body[8]),
		Depth:    int32(binary.BigEndian.Uint32(body[9:13])),
	}, nil
}

func (m QueryTopMessage) Serialize() []byte {
	buf := make([]byte, HeaderLen+QueryTopBodyLen)
	binary.BigEndian.PutUint16(buf[0:2], uint16(QueryTop))
	binary.BigEndian.PutUint64(buf[2:10], uint64(int64(m.SymbolID)))
	buf[10] = byte(m.Side)
	binary.BigEndian.PutUint32(buf[11:15], uint32(m.Depth))
	return buf
}
