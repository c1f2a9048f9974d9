// Command lds-scan streams 360-degree scans from an LDS01 lidar attached
// to a serial port, logging a summary per scan or emitting each scan as a
// JSON line on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/banshee-data/lds01/internal/lds"
	"github.com/banshee-data/lds01/internal/version"
)

var (
	portPath    = flag.String("port", lds.DefaultPort, "serial port the lidar is attached to")
	baudRate    = flag.Int("baud", lds.DefaultBaudRate, "serial baud rate")
	scanLimit   = flag.Int("scans", 0, "number of scans to read before exiting (0 = run until interrupted)")
	jsonOutput  = flag.Bool("json", false, "write each scan as a JSON line on stdout")
	logInterval = flag.Int("log-interval", 2, "statistics logging interval in seconds")
	showVersion = flag.Bool("version", false, "print version and exit")
)

// Scan statistics tracking
type ScanStats struct {
	mu        sync.Mutex
	scanCount int64
	lastRPM   uint16
	lastReset time.Time
}

func (ss *ScanStats) AddScan(rpm uint16) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.scanCount++
	ss.lastRPM = rpm
}

func (ss *ScanStats) GetAndReset() (scans int64, rpm uint16, duration time.Duration) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	now := time.Now()
	duration = now.Sub(ss.lastReset)
	scans = ss.scanCount
	rpm = ss.lastRPM

	ss.scanCount = 0
	ss.lastReset = now

	return
}

// nonZeroRanges counts degree indices with a range return, a quick health
// signal for log output.
func nonZeroRanges(scan *lds.LaserReading) int {
	count := 0
	for _, r := range scan.Ranges {
		if r != 0 {
			count++
		}
	}
	return count
}

// readScans reads frames from the session until the context is cancelled
// or the scan limit is reached.
func readScans(ctx context.Context, session *lds.Session, stats *ScanStats) error {
	encoder := json.NewEncoder(os.Stdout)
	read := 0

	for ctx.Err() == nil {
		scan, err := session.Read()
		if err != nil {
			return err
		}

		stats.AddScan(scan.RPMs)

		if *jsonOutput {
			if err := encoder.Encode(scan); err != nil {
				return fmt.Errorf("failed to encode scan: %w", err)
			}
		} else {
			log.Printf("Scan: %d rpm, %d/360 degrees with returns", scan.RPMs, nonZeroRanges(scan))
		}

		read++
		if *scanLimit > 0 && read >= *scanLimit {
			return nil
		}
	}

	return nil
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("lds-scan %s\n", version.String())
		return
	}

	session, err := lds.Open(*portPath, *baudRate)
	if err != nil {
		log.Fatalf("Failed to open lidar on %s: %v", *portPath, err)
	}
	defer session.Close()

	log.Printf("Lidar started on %s at %d baud", session.Port(), session.BaudRate())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats := &ScanStats{lastReset: time.Now()}
	var wg sync.WaitGroup

	// Periodic stats logging goroutine. Skipped in JSON mode to keep
	// stdout and the log stream apart.
	if !*jsonOutput {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(time.Duration(*logInterval) * time.Second)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					scans, rpm, duration := stats.GetAndReset()
					if scans > 0 {
						log.Printf("Lidar stats: %.1f scans/sec, %d rpm", float64(scans)/duration.Seconds(), rpm)
					}
				}
			}
		}()
	}

	// Reader goroutine owns the session until it returns; Close happens
	// afterwards via the deferred call, keeping Read and Close serialised.
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		if err := readScans(ctx, session, stats); err != nil && ctx.Err() == nil {
			log.Printf("Scan loop error: %v", err)
		}
	}()

	<-ctx.Done()
	wg.Wait()
	log.Print("Lidar stopped")
}
