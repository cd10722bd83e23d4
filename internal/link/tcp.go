// Package link provides a minimal TCP-based driver for
// transport/unicast: session handshake, locator parsing and scouting
// are all out of scope (spec.md §1), so this package owns only the one
// decision a concrete byte stream forces on a driver that those layers
// would otherwise make — how one wire.TransportMessage is delimited
// from the next on the wire. It frames each encoded message behind a
// varint length prefix, which the wire format itself (spec.md §3) does
// not specify since real deployments delimit transport messages at the
// session/link layer instead.
package link

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/codebot/zenoh/codec"
	"github.com/codebot/zenoh/wire"
)

// TCPLink is a transport/unicast.Link backed by a net.Conn.
type TCPLink struct {
	conn net.Conn
	r    *bufio.Reader
}

// NewTCPLink wraps an already-connected or already-accepted conn.
func NewTCPLink(conn net.Conn) *TCPLink {
	return &TCPLink{conn: conn, r: bufio.NewReader(conn)}
}

func (l *TCPLink) String() string {
	return fmt.Sprintf("tcp/%s<->%s", l.conn.LocalAddr(), l.conn.RemoteAddr())
}

// Close closes the underlying connection.
func (l *TCPLink) Close() error {
	return l.conn.Close()
}

// ReadMessage blocks for the next length-prefixed wire.TransportMessage.
func (l *TCPLink) ReadMessage() (wire.TransportMessage, error) {
	n, err := binary.ReadUvarint(l.r)
	if err != nil {
		return wire.TransportMessage{}, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(l.r, buf); err != nil {
		return wire.TransportMessage{}, err
	}
	return wire.DecodeTransportMessage(codec.NewReader(buf))
}

// WriteMessage encodes and sends one wire.TransportMessage.
func (l *TCPLink) WriteMessage(m wire.TransportMessage) error {
	w := codec.NewWriter()
	if err := wire.EncodeTransportMessage(w, m); err != nil {
		return err
	}
	body := w.Bytes()

	prefix := codec.NewWriterSize(binary.MaxVarintLen64)
	if err := prefix.WriteVarint(uint64(len(body))); err != nil {
		return err
	}
	if _, err := l.conn.Write(prefix.Bytes()); err != nil {
		return err
	}
	_, err := l.conn.Write(body)
	return err
}
