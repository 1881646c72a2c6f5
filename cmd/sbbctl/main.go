// Command sbbctl sends sys-botbase commands to a device.
//
// One-shot mode sends the command given as arguments and prints the
// result:
//
//	sbbctl -ip 192.168.1.10 click A
//	sbbctl -ip 192.168.1.10 peak 1234 8
//
// Interactive mode (-interactive) opens a REPL on the device connection:
//
//	sbbctl -ip 192.168.1.10 -interactive
//
// Connection settings can also come from a TOML config file (-config):
//
//	ip = "192.168.1.10"
//	port = 6000
//	timeout_ms = 1000
//	verbose = true
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ergochat/readline"

	"github.com/6a-realm/go-sbb/sbb"
)

const (
	historyFileName = ".sbbctl_history"
	historySize     = 500
)

// fileConfig mirrors the TOML config file layout. Zero values mean the
// field was absent and flag or default values apply.
type fileConfig struct {
	IP        string `toml:"ip"`
	Port      int    `toml:"port"`
	TimeoutMS int    `toml:"timeout_ms"`
	Verbose   bool   `toml:"verbose"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

func main() {
	var (
		configPath  = flag.String("config", "", "TOML config file")
		ip          = flag.String("ip", "", "device IPv4 address")
		port        = flag.Int("port", 0, "device port (default 6000)")
		timeout     = flag.Duration("timeout", 0, "per-read timeout (default 1s)")
		verbose     = flag.Bool("verbose", false, "log every sent and received line")
		interactive = flag.Bool("interactive", false, "start a REPL instead of sending one command")
	)
	flag.Parse()

	var fileCfg fileConfig
	if *configPath != "" {
		var err error
		fileCfg, err = loadFileConfig(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
	}

	// flags win over the config file
	if *ip == "" {
		*ip = fileCfg.IP
	}
	if *port == 0 {
		*port = fileCfg.Port
	}
	if *timeout == 0 && fileCfg.TimeoutMS > 0 {
		*timeout = time.Duration(fileCfg.TimeoutMS) * time.Millisecond
	}
	if fileCfg.Verbose {
		*verbose = true
	}

	if *ip == "" {
		fatalf("no device address: pass -ip or set ip in the config file")
	}

	opts := []sbb.ClientOption{sbb.WithVerbose(*verbose)}
	if *timeout > 0 {
		opts = append(opts, sbb.WithTimeout(*timeout))
	}

	cfg, err := sbb.NewClientConfig(*ip, *port, opts...)
	if err != nil {
		fatalf("%v", err)
	}

	client, err := sbb.NewClient(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	defer client.Disconnect() //nolint:errcheck

	ctx := context.Background()

	if *interactive {
		if err := runREPL(ctx, client); err != nil {
			fatalf("%v", err)
		}

		return
	}

	if flag.NArg() == 0 {
		fatalf("no command given: pass a command or use -interactive")
	}

	if err := runOnce(ctx, client, strings.Join(flag.Args(), " ")); err != nil {
		fatalf("%v", err)
	}
}

// runOnce sends a single command and prints its projected result.
func runOnce(ctx context.Context, client *sbb.Client, command string) error {
	result, err := client.Do(ctx, command)
	if err != nil {
		return err
	}

	// a fault mid-transaction forces the client back to Disconnected
	if client.State() == sbb.DisconnectedState {
		return client.LastFault().Err
	}

	printResult(result)

	return nil
}

// runREPL reads commands line by line and sends each one on the shared
// connection until EOF, Ctrl-C, or an exit command.
func runREPL(ctx context.Context, client *sbb.Client) error {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:                 "sbb> ",
		HistoryFile:            historyPath(),
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	fmt.Printf("connected target %s, type exit or quit to leave\n", client.Addr())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}
		if command == "exit" || command == "quit" {
			return nil
		}

		rl.SaveToHistory(command) //nolint:errcheck

		result, err := client.Do(ctx, command)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		if client.State() == sbb.DisconnectedState {
			fmt.Fprintf(os.Stderr, "fault: %v\n", client.LastFault().Err)
		}

		printResult(result)
	}
}

// printResult renders the projected result: acknowledged commands print
// "ok", scalar reads print the line, streams print one line per entry.
func printResult(result sbb.Result) {
	switch value := result.Value().(type) {
	case bool:
		fmt.Println("ok")
	case string:
		fmt.Println(value)
	case []string:
		for _, line := range value {
			fmt.Println(line)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}

	return filepath.Join(home, historyFileName)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sbbctl: "+format+"\n", args...)
	os.Exit(1)
}
