package render

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/boreq/ircline/irc/protocol"
	"github.com/boreq/ircline/utils/size"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

// The proto format is a stream of frames:
//     LEN      TYPE      DESCRIPTION
//     4        uint32    Size of the payload.
//     size     []byte    Protobuf encoded google.protobuf.Struct holding
//                        the document.

const sizeHeaderLen = 4

// MaxFrameSize limits the payload of a single frame.
const MaxFrameSize = size.Mebibyte

type protoRenderer struct {
	writer io.Writer
}

func newProtoRenderer(w io.Writer) *protoRenderer {
	return &protoRenderer{writer: w}
}

func (r *protoRenderer) Render(msg *protocol.Message) error {
	s, err := documentToStruct(NewDocument(msg))
	if err != nil {
		return err
	}
	payload, err := proto.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "could not marshal the struct")
	}
	return writeFrame(r.writer, payload)
}

func (r *protoRenderer) Close() error {
	return nil
}

type protoReader struct {
	reader io.Reader
}

func newProtoReader(r io.Reader) *protoReader {
	return &protoReader{reader: r}
}

func (r *protoReader) Read() (*protocol.Message, error) {
	payload, err := readFrame(r.reader)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := proto.Unmarshal(payload, s); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal the struct")
	}
	doc, err := structToDocument(s)
	if err != nil {
		return nil, err
	}
	return doc.Message()
}

// documentToStruct goes through json as structpb only accepts generic maps
// and slices.
func documentToStruct(doc Document) (*structpb.Struct, error) {
	j, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(j, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func structToDocument(s *structpb.Struct) (Document, error) {
	var doc Document
	j, err := json.Marshal(s.AsMap())
	if err != nil {
		return doc, err
	}
	err = json.Unmarshal(j, &doc)
	return doc, err
}

// writeFrame writes the payload preceded by its size.
func writeFrame(w io.Writer, payload []byte) error {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(payload))); err != nil {
		return err
	}
	buf.Write(payload)
	_, err := buf.WriteTo(w)
	return err
}

// readFrame reads a single frame and returns its payload. A clean end of
// the stream before the header returns io.EOF.
func readFrame(r io.Reader) ([]byte, error) {
	// Get the size
	buf := make([]byte, sizeHeaderLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}

	// Decode the size
	n, err := readSizeHeader(buf)
	if err != nil {
		return nil, err
	}
	if int64(n) > int64(MaxFrameSize) {
		return nil, errors.Errorf("frame of %d bytes exceeds the limit of %s", n, MaxFrameSize)
	}

	// Get the data
	rv := make([]byte, n)
	if _, err := io.ReadFull(r, rv); err != nil {
		return nil, errors.Wrap(err, "truncated frame")
	}
	return rv, nil
}

// readSizeHeader reads the payload size from b.
func readSizeHeader(b []byte) (n uint32, err error) {
	buf := bytes.NewBuffer(b)
	err = binary.Read(buf, binary.BigEndian, &n)
	return
}
