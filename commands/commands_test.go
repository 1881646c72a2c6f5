package commands

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/6a-realm/go-sbb/sbb"
)

// recordingAgent is a loopback mock of the sys-botbase agent that records
// every received command line. It echoes every command; commands whose
// verb has a canned response get that response written before the echo,
// the way the agent delivers read results; sequence commands get a "done"
// line after the echo.
type recordingAgent struct {
	t  *testing.T
	ln net.Listener

	mu       sync.Mutex
	received []string

	// responses maps a command verb to the data line sent before the echo.
	responses map[string]string
}

func newRecordingAgent(t *testing.T, responses map[string]string) *recordingAgent {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	a := &recordingAgent{t: t, ln: ln, responses: responses}
	go a.serve()

	t.Cleanup(func() { _ = ln.Close() })

	return a
}

func (a *recordingAgent) serve() {
	for {
		conn, err := a.ln.Accept()
		if err != nil {
			return
		}

		go a.handle(conn)
	}
}

func (a *recordingAgent) handle(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		cmd := strings.TrimSuffix(line, "\n")
		cmd = strings.TrimSuffix(cmd, "\r")

		a.mu.Lock()
		a.received = append(a.received, cmd)
		a.mu.Unlock()

		verb, _, _ := strings.Cut(cmd, " ")
		if response, ok := a.responses[verb]; ok {
			if _, err := conn.Write([]byte(response + "\n")); err != nil {
				return
			}
		}

		if _, err := conn.Write([]byte(line)); err != nil {
			return
		}

		if strings.Contains(cmd, "Seq") {
			if _, err := conn.Write([]byte("done\n")); err != nil {
				return
			}
		}
	}
}

// commands returns the received command lines, init handshake excluded.
func (a *recordingAgent) commands() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.received) <= 2 {
		return nil
	}

	return append([]string(nil), a.received[2:]...)
}

func newTestClient(t *testing.T, a *recordingAgent) *sbb.Client {
	t.Helper()

	port := a.ln.Addr().(*net.TCPAddr).Port

	cfg, err := sbb.NewClientConfig("127.0.0.1", port, sbb.WithTimeout(500*time.Millisecond))
	require.NoError(t, err)

	client, err := sbb.NewClient(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Disconnect() })

	return client
}

func TestPeekCommands(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	agent := newRecordingAgent(t, map[string]string{
		"peak":              "48AB",
		"peekAbsolute":      "48AB",
		"peekMain":          "48AB",
		"peekMulti":         "48AB",
		"peekAbsoluteMulti": "48AB",
		"peekMainMulti":     "48AB",
	})
	client := newTestClient(t, agent)

	res, err := Peek(ctx, client, 0x64, 10)
	require.NoError(err)
	require.Equal("48AB", res)

	_, err = PeekAbsolute(ctx, client, 0x7f000000, 4)
	require.NoError(err)

	_, err = PeekMain(ctx, client, 0x1c00, 8)
	require.NoError(err)

	_, err = PeekMulti(ctx, client, PeekRange{Offset: 0x10, Size: 2}, PeekRange{Offset: 0x20, Size: 4})
	require.NoError(err)

	require.Equal([]string{
		"peak 64 10",
		"peekAbsolute 7f000000 4",
		"peekMain 1c00 8",
		"peekMulti 10 2 20 4 ",
	}, agent.commands())
}

func TestPointerCommands(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	agent := newRecordingAgent(t, map[string]string{
		"pointerPeek":      "FF",
		"pointerPeekMulti": "FF",
		"pointer":          "424242",
		"pointerAll":       "424242",
		"pointerRelative":  "424242",
	})
	client := newTestClient(t, agent)

	_, err := PointerPeek(ctx, client, 8, 0x10, -0x1f)
	require.NoError(err)

	_, err = PointerPeekMulti(ctx, client, 4, []int64{0x10, 0x18}, []int64{0x20, 0x28})
	require.NoError(err)

	_, err = Pointer(ctx, client, 0x10, 0x18)
	require.NoError(err)

	_, err = PointerAll(ctx, client, 0x10)
	require.NoError(err)

	_, err = PointerRelative(ctx, client, 0x30, 0x10, 0x18)
	require.NoError(err)

	err = PointerPoke(ctx, client, 0xff, 0x10, 0x18)
	require.NoError(err)

	require.Equal([]string{
		"pointerPeek 8 10 -1f",
		"pointerPeekMulti 4 10 18 20 28",
		"pointer 10 18",
		"pointerAll 10",
		"pointerRelative 10 18 30",
		"pointerPoke ff 10 18",
	}, agent.commands())
}

func TestPokeAndFreezeCommands(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	agent := newRecordingAgent(t, map[string]string{"freezeCount": "2"})
	client := newTestClient(t, agent)

	require.NoError(Poke(ctx, client, 0x7f000000, 0xff))
	require.NoError(PokeAbsolute(ctx, client, 0x10, 0x1234))
	require.NoError(PokeMain(ctx, client, 0x20, 0x1))
	require.NoError(Freeze(ctx, client, 0x10, 0xff, 0))
	require.NoError(Freeze(ctx, client, 0x10, 0xff, 500))
	require.NoError(Unfreeze(ctx, client, 0x10))

	count, err := FreezeCount(ctx, client)
	require.NoError(err)
	require.Equal("2", count)

	require.NoError(FreezeClear(ctx, client))
	require.NoError(FreezePause(ctx, client))
	require.NoError(FreezeUnpause(ctx, client))

	require.Equal([]string{
		"poke 7f000000 ff",
		"pokeAbsolute 10 1234",
		"pokeMain 20 1",
		"freeze 10 ff 200",
		"freeze 10 ff 500",
		"unfreeze 10",
		"freezeCount",
		"freezeClear",
		"freezePause",
		"freezeUnpause",
	}, agent.commands())
}

func TestControllerCommands(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	agent := newRecordingAgent(t, nil)
	client := newTestClient(t, agent)

	require.NoError(Press(ctx, client, ButtonL))
	require.NoError(Release(ctx, client, ButtonL))
	require.NoError(Click(ctx, client, ButtonA))
	require.NoError(SetStick(ctx, client, StickLeft, 100, -100))
	require.NoError(ClickSeq(ctx, client, "A,W1000,B"))
	require.NoError(ClickCancel(ctx, client))
	require.NoError(DetachController(ctx, client))

	require.Equal([]string{
		"press L",
		"release L",
		"click A",
		"setStick LEFT 100 -100",
		"clickSeq A,W1000,B",
		"clickCancel",
		"detachController",
	}, agent.commands())
}

func TestTouchAndKeyboardCommands(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	agent := newRecordingAgent(t, nil)
	client := newTestClient(t, agent)

	require.NoError(Touch(ctx, client, 100, 200, 300, 400))
	require.NoError(TouchHold(ctx, client, 10, 20, 500))
	require.NoError(TouchDraw(ctx, client, 0, 0, 1280, 720))
	require.NoError(TouchCancel(ctx, client))
	require.NoError(Key(ctx, client, 4, 5, 6))
	require.NoError(KeyMod(ctx, client, 4, 2, 5, 2))
	require.NoError(KeyMulti(ctx, client, 4, 5))

	require.Error(KeyMod(ctx, client, 4, 2, 5))

	require.Equal([]string{
		"touch 100 200 300 400",
		"touchHold 10 20 500",
		"touchDraw 0 0 1280 720",
		"touchCancel",
		"key 4 5 6",
		"keyMod 4 2 5 2",
		"keyMulti 4 5",
	}, agent.commands())
}

func TestSystemCommands(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	agent := newRecordingAgent(t, map[string]string{
		"getTitleID":       "0100ABCD12345678",
		"getVersion":       "2.3",
		"charge":           "87",
		"isProgramRunning": "1",
		"game":             "Some Game",
		"pixelPeek":        "FFD8FFE0",
	})
	client := newTestClient(t, agent)

	titleID, err := GetTitleID(ctx, client)
	require.NoError(err)
	require.Equal("0100ABCD12345678", titleID)

	version, err := GetVersion(ctx, client)
	require.NoError(err)
	require.Equal("2.3", version)

	charge, err := Charge(ctx, client)
	require.NoError(err)
	require.Equal("87", charge)

	running, err := IsProgramRunning(ctx, client, "0100ABCD12345678")
	require.NoError(err)
	require.True(running)

	name, err := Game(ctx, client, "name")
	require.NoError(err)
	require.Equal("Some Game", name)

	screen, err := PixelPeek(ctx, client)
	require.NoError(err)
	require.Equal("FFD8FFE0", screen)

	require.NoError(ScreenOff(ctx, client))
	require.NoError(ScreenOn(ctx, client))
	require.NoError(Configure(ctx, client, "mainLoopSleepTime", "50"))

	require.Equal([]string{
		"getTitleID",
		"getVersion",
		"charge",
		"isProgramRunning 0100ABCD12345678",
		"game name",
		"pixelPeek",
		"screenOff",
		"screenOn",
		"configure mainLoopSleepTime 50",
	}, agent.commands())
}
