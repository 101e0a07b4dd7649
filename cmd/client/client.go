// Command client is a CLI driver for cmd/server: it places, cancels, and
// modifies orders and queries book depth over the depthbook wire protocol.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"depthbook/internal/common"
	"depthbook/internal/wire"
)

func main() {
	serverAddr := flag.String("server", "127.0.0.1:9001", "address of the depthbook server")
	action := flag.String("action", "add", "action to perform: ['add', 'cancel', 'modify', 'query']")

	symbolID := flag.Int64("symbol-id", 1, "symbol id")
	orderID := flag.Int64("order-id", 0, "order id")
	price := flag.Int64("price", 100, "limit price")
	qty := flag.Int64("qty", 10, "quantity")
	sideStr := flag.String("side", "buy", "order side: 'buy' or 'sell'")
	depth := flag.Int("depth", 5, "number of levels to query")

	flag.Parse()

	side := common.Buy
	if *sideStr == "sell" {
		side = common.Sell
	}

	conn, err := net.Dial("tcp", *serverAddr)
	if err != nil {
		log.Fatalf("failed to connect to %s: %v", *serverAddr, err)
	}
	defer conn.Close()

	var frame []byte
	switch *action {
	case "add":
		frame = wire.NewOrderMessage{SymbolID: common.SymbolID(*symbolID), OrderID: *orderID, Px: *price, Qty: *qty, Side: side}.Serialize()
	case "cancel":
		frame = wire.CancelOrderMessage{OrderID: *orderID}.Serialize()
	case "modify":
		frame = wire.ModifyOrderMessage{OrderID: *orderID, Px: *price, Qty: *qty}.Serialize()
	case "query":
		frame = wire.QueryTopMessage{SymbolID: common.SymbolID(*symbolID), Side: side, Depth: int32(*depth)}.Serialize()
	default:
		fmt.Fprintf(os.Stderr, "unknown action: %s\n", *action)
		os.Exit(1)
	}

	if _, err := conn.Write(frame); err != nil {
		log.Fatalf("failed sending request: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	buf := make([]byte, 4*1024)
	n, err := conn.Read(buf)
	if err != nil {
		log.Fatalf("failed reading reply: %v", err)
	}

	printReply(buf[:n])
}

func printReply(buf []byte) {
	if ack, err := wire.ParseAck(buf); err == nil {
		fmt.Printf("ack: ok=%v\n", ack.OK)
		return
	}
	if errMsg, err := wire.ParseErrorMsg(buf); err == nil {
		fmt.Printf("error: %s\n", errMsg.Reason)
		return
	}
	if snap, err := wire.ParseBookSnapshot(buf); err == nil {
		for _, lvl := range snap.Levels {
			fmt.Printf("px=%d qty=%d\n", lvl.Px, lvl.Qty)
		}
		return
	}
	fmt.Println("unrecognized reply")
}
