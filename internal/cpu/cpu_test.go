package cpu

import (
	"testing"

	"mos6502/internal/memory"
)

func TestResetSequence(t *testing.T) {
	ip, m := newTestInterpreter()
	_ = m
	c := ip.CPU()
	if c.SP != 0xFD {
		t.Fatalf("SP = %#02x, want 0xFD", c.SP)
	}
	if !c.I || c.D || c.B {
		t.Fatalf("flags after reset = I:%v D:%v B:%v, want I:true D:false B:false", c.I, c.D, c.B)
	}
	if c.PC != 0x8000 {
		t.Fatalf("PC = %#04x, want 0x8000", c.PC)
	}
}

func TestLDAImmediateSetsAAndFlags(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA9, 0x00) // LDA #$00

	if _, err := ip.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	c := ip.CPU()
	if c.A != 0 || !c.Z || c.N {
		t.Fatalf("A=%#02x Z=%v N=%v, want 0/true/false", c.A, c.Z, c.N)
	}
}

func TestLDAThenSTAAbsolute(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA9, 0x7F, 0x8D, 0x00, 0x02) // LDA #$7F; STA $0200

	if _, err := ip.Step(); err != nil {
		t.Fatalf("Step 1: %v", err)
	}
	if _, err := ip.Step(); err != nil {
		t.Fatalf("Step 2: %v", err)
	}

	ref, err := memory.Resolve[uint8](m, 0x0200)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ref.Read() != 0x7F {
		t.Fatalf("$0200 = %#02x, want 0x7F", ref.Read())
	}
}

func TestTransferRegisters(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA9, 0x55, 0xAA, 0x8A) // LDA #$55; TAX; TXA
	for i := 0; i < 3; i++ {
		if _, err := ip.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	c := ip.CPU()
	if c.X != 0x55 || c.A != 0x55 {
		t.Fatalf("X=%#02x A=%#02x, want both 0x55", c.X, c.A)
	}
}

func TestIncDecWrapping(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA2, 0xFF, 0xE8, 0xE8) // LDX #$FF; INX; INX
	for i := 0; i < 3; i++ {
		if _, err := ip.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if ip.CPU().X != 0x01 {
		t.Fatalf("X = %#02x, want 0x01 (0xFF -> 0x00 -> 0x01)", ip.CPU().X)
	}
}

func TestCompareSetsCarryAndZero(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA9, 0x10, 0xC9, 0x10) // LDA #$10; CMP #$10
	for i := 0; i < 2; i++ {
		if _, err := ip.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	c := ip.CPU()
	if !c.Z || !c.C {
		t.Fatalf("Z=%v C=%v, want both true for equal compare", c.Z, c.C)
	}
}

func TestJsrRts(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	m.load(0x9000, 0x60)            // RTS

	if _, err := ip.Step(); err != nil { // JSR
		t.Fatalf("JSR: %v", err)
	}
	if ip.CPU().PC != 0x9000 {
		t.Fatalf("PC after JSR = %#04x, want 0x9000", ip.CPU().PC)
	}
	if _, err := ip.Step(); err != nil { // RTS
		t.Fatalf("RTS: %v", err)
	}
	if ip.CPU().PC != 0x8003 {
		t.Fatalf("PC after RTS = %#04x, want 0x8003", ip.CPU().PC)
	}
}

func TestBitSetsNVZWithoutTouchingA(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x0010, 0xC0) // N=1 V=1 bits set
	m.load(0x8000, 0xA9, 0x3F, 0x24, 0x10) // LDA #$3F; BIT $10
	for i := 0; i < 2; i++ {
		if _, err := ip.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	c := ip.CPU()
	if c.A != 0x3F {
		t.Fatalf("BIT must not modify A, got %#02x", c.A)
	}
	if !c.N || !c.V || !c.Z {
		t.Fatalf("N=%v V=%v Z=%v, want all true", c.N, c.V, c.Z)
	}
}
