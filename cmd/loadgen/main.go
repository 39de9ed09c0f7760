// Command loadgen drives the matching server's TCP protocol with a
// configurable volume of randomized orders and reports throughput.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"runtime/pprof"
	"strings"
	"time"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "server address")
	totalOrders := flag.Int("orders", 50000, "number of orders to submit")
	symbol := flag.String("symbol", "SIM", "symbol to trade")
	basePrice := flag.Float64("base-price", 100.0, "mid price used for randomization")
	priceBand := flag.Float64("price-band", 5.0, "price band half-width around the mid")
	minQty := flag.Int64("min-qty", 1, "minimum order quantity")
	maxQty := flag.Int64("max-qty", 100, "maximum order quantity")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for deterministic random streams")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	connections := flag.Int("connections", 1, "number of concurrent connections to submit over")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	conns := make([]net.Conn, *connections)
	readers := make([]*bufio.Reader, *connections)
	for i := range conns {
		conn, err := net.Dial("tcp", *addr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dial failed: %v\n", err)
			os.Exit(1)
		}
		conns[i] = conn
		readers[i] = bufio.NewReader(conn)
	}

	var trades int64
	start := time.Now()

	for i := 0; i < *totalOrders; i++ {
		conn, reader := conns[i%*connections], readers[i%*connections]

		side := "BUY"
		if rng.Intn(2) == 1 {
			side = "SELL"
		}
		price := *basePrice + (rng.Float64()*2-1)**priceBand
		quantity := *minQty + rng.Int63n(*maxQty-*minQty+1)

		cmd := fmt.Sprintf("ADD_ORDER %s %s %.2f %d\n", side, *symbol, price, quantity)
		if _, err := conn.Write([]byte(cmd)); err != nil {
			fmt.Fprintf(os.Stderr, "submit failed: %v\n", err)
			continue
		}

		response, err := readResponse(reader)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read failed: %v\n", err)
			continue
		}
		trades += int64(strings.Count(response, "TRADE EXECUTED"))
	}

	elapsed := time.Since(start)

	for i := range conns {
		conns[i].Write([]byte("DISCONNECT\n"))
		conns[i].Close()
	}

	ordersPerSec := float64(*totalOrders) / elapsed.Seconds()
	tradesPerSec := float64(trades) / elapsed.Seconds()

	fmt.Printf("submitted %d orders in %s (%.0f orders/s)\n", *totalOrders, elapsed.Truncate(time.Millisecond), ordersPerSec)
	fmt.Printf("matched %d trades (%.0f trades/s)\n", trades, tradesPerSec)
	fmt.Printf("config: connections=%d symbol=%s base-price=%.2f\n", *connections, *symbol, *basePrice)
}

func readResponse(reader *bufio.Reader) (string, error) {
	var out []byte
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	out = append(out, line...)

	for reader.Buffered() > 0 {
		line, err = reader.ReadString('\n')
		if err != nil {
			break
		}
		out = append(out, line...)
	}
	return string(out), nil
}
