package tcp

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/iot-kits/aprsbln/internal/domain"
)

func startEchoListener(t *testing.T) (net.Listener, domain.ServerEndpoint) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })
	addr := ln.Addr().(*net.TCPAddr)
	return ln, domain.ServerEndpoint{Host: "127.0.0.1", Port: addr.Port}
}

func TestConnectAndClose(t *testing.T) {
	_, endpoint := startEchoListener(t)
	tr := NewTransport(endpoint, time.Second)

	if tr.Connected() {
		t.Fatal("connected before Connect")
	}
	if err := tr.Connect(); err != nil {
		t.Fatal(err)
	}
	if !tr.Connected() {
		t.Fatal("not connected after Connect")
	}
	// Connect is a no-op while connected.
	if err := tr.Connect(); err != nil {
		t.Fatal(err)
	}

	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if tr.Connected() {
		t.Fatal("connected after Close")
	}
	// Closing again is a no-op.
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestConnectRefused(t *testing.T) {
	ln, endpoint := startEchoListener(t)
	ln.Close()

	tr := NewTransport(endpoint, 200*time.Millisecond)
	if err := tr.Connect(); err == nil {
		tr.Close()
		t.Fatal("expected connect error")
	}
	if tr.Connected() {
		t.Fatal("connected after failed Connect")
	}
}

func TestReadNonBlocking(t *testing.T) {
	ln, endpoint := startEchoListener(t)

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
	}()

	tr := NewTransport(endpoint, time.Second)
	if err := tr.Connect(); err != nil {
		t.Fatal(err)
	}
	defer tr.Close()
	server := <-accepted
	defer server.Close()

	// Nothing pending: an immediate (0, nil).
	buf := make([]byte, 16)
	n, err := tr.Read(buf)
	if n != 0 || err != nil {
		t.Fatalf("Read with no data = (%d, %v), want (0, nil)", n, err)
	}

	if _, err := server.Write([]byte("hi\n")); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(time.Second)
	var got []byte
	for len(got) < 3 && time.Now().Before(deadline) {
		n, err := tr.Read(buf)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, buf[:n]...)
		time.Sleep(5 * time.Millisecond)
	}
	if string(got) != "hi\n" {
		t.Fatalf("read %q, want %q", got, "hi\n")
	}
}

func TestReadWhileClosed(t *testing.T) {
	_, endpoint := startEchoListener(t)
	tr := NewTransport(endpoint, time.Second)

	if _, err := tr.Read(make([]byte, 1)); !errors.Is(err, domain.ErrNotConnected) {
		t.Fatalf("Read while closed = %v, want ErrNotConnected", err)
	}
	if _, err := tr.Write([]byte("x")); !errors.Is(err, domain.ErrNotConnected) {
		t.Fatalf("Write while closed = %v, want ErrNotConnected", err)
	}
}
