package dsv

import (
	"bytes"
	"testing"

	"github.com/go-sif/samplecsv"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultDialect(t *testing.T) {
	buff := new(bytes.Buffer)
	w := CreateWriter(buff, &WriterConf{})
	require.Nil(t, w.WriteRecord(samplecsv.Record{"a", "b,c"}))
	require.Nil(t, w.WriteRecord(samplecsv.Record{"say \"hi\"", ""}))
	require.Nil(t, w.Flush())
	require.Equal(t, "a,\"b,c\"\n\"say \"\"hi\"\"\",\n", buff.String())
}

func TestWriteCustomDialect(t *testing.T) {
	buff := new(bytes.Buffer)
	w := CreateWriter(buff, &WriterConf{Delimiter: '\t', UseCRLF: true})
	require.Nil(t, w.WriteRecord(samplecsv.Record{"1", "2"}))
	require.Nil(t, w.Flush())
	require.Equal(t, "1\t2\r\n", buff.String())
}
