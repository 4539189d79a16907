package fasta

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/juliahi/bioio/seqrecord"
)

var testFastaInput = []byte(`>YAL001C TFC3 SGDID:S000000001
MVLTIYPDELVQIVSDKIASNKGKITLNQLWDISGKYFDLSDKKVKQFVLSCVILKKDIE
VYCDGAITTKNVTDIIGDANHSYSVGITEDSLWTLLTGYTKKESTIGNSAFELLLEVAKS
GEKGINTMDLAQVTGQDPRSVTGRIKKINHLLTSSQLIYKGHVVKQLKLKKFSHDGVDSN
>YDR134C YDR134C SGDID:S000002541
MQFSTVASIAAIAAVASAASNITTATVTEESTTLVTITSCEDHVCSETVSPALVSTATVT
VNDVITYTTWCPLPTTEAPKNTTSPAPTEKPTEKPTEKPTQQGSSTQTVTSYTGAAVKAL
PAAGALLAGAAALLL
`)

func TestReadAll(t *testing.T) {
	r := NewReader(bytes.NewBuffer(testFastaInput))
	all, err := r.ReadAll()
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 records, got %d.", len(all))
	}
	testLastRecord(t, all[len(all)-1])
}

func TestRead(t *testing.T) {
	var last, rec seqrecord.Record
	var err error

	r := NewReader(bytes.NewBuffer(testFastaInput))
	r.Alphabet = seqrecord.AlphabetProtein
	for {
		rec, err = r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("%s", err)
		}
		if rec.Alphabet != seqrecord.AlphabetProtein {
			t.Fatalf("Expected a protein alphabet, got %s.", rec.Alphabet)
		}
		last = rec
	}

	testLastRecord(t, last)
}

func TestReadWrite(t *testing.T) {
	recs, err := NewReader(bytes.NewBuffer(testFastaInput)).ReadAll()
	if err != nil {
		t.Fatalf("%s", err)
	}

	buf := new(bytes.Buffer)
	if err := NewWriter(buf).WriteAll(recs); err != nil {
		t.Fatalf("%s", err)
	}
	if diff := cmp.Diff(string(testFastaInput), buf.String()); diff != "" {
		t.Fatalf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInvalid(t *testing.T) {
	r := NewReader(strings.NewReader(">a\nAC1GT\n"))
	if _, err := r.Read(); err == nil {
		t.Fatalf("Expected an error for an invalid residue.")
	}

	r = NewReader(strings.NewReader(">a\nAC1GT\n"))
	r.TrustSequences = true
	rec, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Residues() != "AC1GT" {
		t.Fatalf("Trusted sequences should be read as is, got '%s'.",
			rec.Residues())
	}

	r = NewReader(strings.NewReader("ACGT\n"))
	if _, err := r.Read(); err == nil {
		t.Fatalf("Expected an error for a missing header.")
	}
}

func TestWriteHeaders(t *testing.T) {
	tests := []struct {
		id, desc, want string
	}{
		{"a", "", ">a\nACGT"},
		{"a", "a b", ">a b\nACGT"},
		{"a", "some description", ">a some description\nACGT"},
		{"", "free text", ">free text\nACGT"},
	}
	for _, test := range tests {
		rec := seqrecord.NewRecord(test.id, "ACGT", seqrecord.AlphabetDNA)
		rec.Description = test.desc
		if got := Format(rec, 60); got != test.want {
			t.Fatalf("Expected %q, got %q.", test.want, got)
		}
	}
	rec := seqrecord.NewRecord("w", "ACGTACGTAC", seqrecord.AlphabetDNA)
	if got := Format(rec, 4); got != ">w\nACGT\nACGT\nAC" {
		t.Fatalf("Unexpected wrapping %q.", got)
	}
}

func TestAligned(t *testing.T) {
	in := ">a\nAC-T\n>b\nA-GT\n>c\nACG\n"
	r := NewAlignedReader(strings.NewReader(in))
	if _, err := r.ReadAll(); err == nil {
		t.Fatalf("Expected an error for sequences of different lengths.")
	}

	recs, err := NewAlignedReader(strings.NewReader(in[:16])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 records, got %d.", len(recs))
	}

	buf := new(bytes.Buffer)
	w := NewAlignedWriter(buf)
	recs = append(recs, seqrecord.NewRecord("c", "ACG", seqrecord.AlphabetDNA))
	if err := w.WriteAll(recs); err == nil {
		t.Fatalf("Expected an error writing sequences of different lengths.")
	}
}

func testLastRecord(t *testing.T, last seqrecord.Record) {
	// Check the value of the last sequence.
	answer := "MQFSTVASIAAIAAVASAASNITTATVTEESTTLVTITSCEDHVCSETVSPALVSTATVT" +
		"VNDVITYTTWCPLPTTEAPKNTTSPAPTEKPTEKPTEKPTQQGSSTQTVTSYTGAAVKAL" +
		"PAAGALLAGAAALLL"
	if ours := last.Residues(); answer != ours {
		t.Fatalf("The last sequence should be\n%s\nbut we got\n%s",
			answer, ours)
	}

	answer = "YDR134C YDR134C SGDID:S000002541"
	if last.Description != answer {
		t.Fatalf("The last header should be\n%s\nbut we got\n%s",
			answer, last.Description)
	}
	if last.ID != "YDR134C" || last.Seq.Name != "YDR134C" {
		t.Fatalf("Expected identifier 'YDR134C', got '%s'.", last.ID)
	}
}
