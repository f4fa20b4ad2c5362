package cpu

import "testing"

func TestBaseCyclesForImpliedInstructions(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xEA) // NOP
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 2 {
		t.Fatalf("NOP cost %d cycles, want 2", cycles)
	}
}

func TestAbsoluteXNoPageCross(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA2, 0x01, 0xBD, 0x00, 0x02) // LDX #$01; LDA $0200,X
	runSteps(t, ip, 1)
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 4 {
		t.Fatalf("LDA abs,X (no cross) cost %d cycles, want 4", cycles)
	}
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA2, 0x01, 0xBD, 0xFF, 0x02) // LDX #$01; LDA $02FF,X (crosses to $0300)
	runSteps(t, ip, 1)
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 5 {
		t.Fatalf("LDA abs,X (crossed) cost %d cycles, want 5", cycles)
	}
}

func TestStoreAbsoluteXNeverGetsPageCrossBonus(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA2, 0x01, 0x9D, 0xFF, 0x02) // LDX #$01; STA $02FF,X
	runSteps(t, ip, 1)
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 5 {
		t.Fatalf("STA abs,X cost %d cycles, want fixed 5 regardless of crossing", cycles)
	}
}

func TestRmwAbsoluteXAlwaysPaysExtraCycle(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0xA2, 0x01, 0xFE, 0x00, 0x02) // LDX #$01; INC $0200,X (no page cross)
	runSteps(t, ip, 1)
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 7 {
		t.Fatalf("INC abs,X cost %d cycles, want unconditional 7", cycles)
	}
}

func TestBranchNotTakenCostsBaseCycles(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0x18, 0xB0, 0x10) // CLC; BCS (not taken)
	runSteps(t, ip, 1)
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 2 {
		t.Fatalf("untaken branch cost %d cycles, want 2", cycles)
	}
}

func TestBranchTakenSamePageCostsThreeCycles(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0x38, 0xB0, 0x10) // SEC; BCS +16 (same page)
	runSteps(t, ip, 1)
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 3 {
		t.Fatalf("taken branch (same page) cost %d cycles, want 3", cycles)
	}
}

func TestBranchTakenPageCrossCostsFourCycles(t *testing.T) {
	ip, m := newTestInterpreter()
	// Put the branch right near a page boundary so the target lands on
	// the next page.
	m.load(0x80F0, 0x38)       // SEC
	m.load(0x80F1, 0xB0, 0x20) // BCS +32, lands past 0x8100
	ip.CPU().PC = 0x80F0
	runSteps(t, ip, 1)
	cycles, err := ip.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 4 {
		t.Fatalf("taken branch (page cross) cost %d cycles, want 4", cycles)
	}
}

func TestJsrRtsBaseCycles(t *testing.T) {
	ip, m := newTestInterpreter()
	m.load(0x8000, 0x20, 0x00, 0x90)
	m.load(0x9000, 0x60)

	cycles, err := ip.Step()
	if err != nil || cycles != 6 {
		t.Fatalf("JSR cost %d cycles (err=%v), want 6", cycles, err)
	}
	cycles, err = ip.Step()
	if err != nil || cycles != 6 {
		t.Fatalf("RTS cost %d cycles (err=%v), want 6", cycles, err)
	}
}
