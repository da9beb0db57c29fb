package xmlsoccer

import "testing"

const leaguesAccountA = `<?xml version="1.0" encoding="utf-8"?>
<XMLSOCCER.COM>
  <League><Id>1</Id><Name>English Premier League</Name></League>
  <AccountInformation>Data requested at 14:02 by account A</AccountInformation>
</XMLSOCCER.COM>`

const leaguesAccountB = `<XMLSOCCER.COM><League>
	<Id>1</Id>
	<Name>English Premier League</Name>
</League><AccountInformation>Data requested at 16:40 by account B</AccountInformation></XMLSOCCER.COM>`

func TestParseDocument_Accessors(t *testing.T) {
	t.Parallel()

	doc, err := parseDocument([]byte(leaguesAccountA))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Name() != "XMLSOCCER.COM" {
		t.Fatalf("unexpected root %q", doc.Name())
	}
	leagues := doc.ChildrenNamed("League")
	if len(leagues) != 1 || leagues[0].ChildText("Name") != "English Premier League" {
		t.Fatalf("unexpected leagues %+v", leagues)
	}
	if doc.Child("Missing") != nil || doc.ChildText("Missing") != "" {
		t.Fatalf("missing child should be nil with empty text")
	}
}

func TestParseDocument_RejectsEmptyAndMalformed(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "   ", "<open>", "plain text"} {
		if _, err := parseDocument([]byte(body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestContentHash_IgnoresAccountInformationAndWhitespace(t *testing.T) {
	t.Parallel()

	a, err := parseDocument([]byte(leaguesAccountA))
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	b, err := parseDocument([]byte(leaguesAccountB))
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}

	hashA, err := contentHash(a)
	if err != nil {
		t.Fatalf("hash a: %v", err)
	}
	hashB, err := contentHash(b)
	if err != nil {
		t.Fatalf("hash b: %v", err)
	}
	if hashA != hashB {
		t.Fatalf("expected identical data to hash identically: %s vs %s", hashA, hashB)
	}

	changed, _ := parseDocument([]byte(`<XMLSOCCER.COM><League><Id>2</Id><Name>English Premier League</Name></League></XMLSOCCER.COM>`))
	hashChanged, _ := contentHash(changed)
	if hashChanged == hashA {
		t.Fatalf("expected different data to change the hash")
	}
}
