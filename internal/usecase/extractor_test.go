package usecase

import (
	"testing"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

func TestExtractMemoryAndStorage(t *testing.T) {
	ex := NewJapaneseSpecExtractor()

	tests := []struct {
		name      string
		text      string
		wantMem   int
		wantStor  int
		noMem     bool
		noStorage bool
	}{
		{name: "keyword before value", text: "メモリ8GB SSD256GB", wantMem: 8, wantStor: 256},
		{name: "storage unit before keyword", text: "メモリ16GB搭載、ストレージは512GB SSDです", wantMem: 16, wantStor: 512},
		{name: "memory unit before keyword", text: "中古ノートPC 8GB RAM", wantMem: 8, noStorage: true},
		{name: "english tokens", text: "Memory: 32 GB, SSD 1TB", wantMem: 32, wantStor: 1024},
		{name: "terabyte normalized", text: "SSD 2TB", noMem: true, wantStor: 2048},
		{name: "no signals", text: "中古デスクトップパソコン 本体のみ", noMem: true, noStorage: true},
		{name: "window too wide", text: "メモリ増設可能モデルで安心の大容量 8GB", noMem: true, noStorage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, _ := ex.Extract(tt.text)
			if tt.noMem {
				if attrs.MemoryGB != nil {
					t.Fatalf("MemoryGB = %d, want nil", *attrs.MemoryGB)
				}
			} else if attrs.MemoryGB == nil || *attrs.MemoryGB != tt.wantMem {
				t.Fatalf("MemoryGB = %v, want %d", attrs.MemoryGB, tt.wantMem)
			}
			if tt.noStorage {
				if attrs.StorageGB != nil {
					t.Fatalf("StorageGB = %d, want nil", *attrs.StorageGB)
				}
			} else if attrs.StorageGB == nil || *attrs.StorageGB != tt.wantStor {
				t.Fatalf("StorageGB = %v, want %d", attrs.StorageGB, tt.wantStor)
			}
		})
	}
}

func TestExtractSpinningDisk(t *testing.T) {
	ex := NewJapaneseSpecExtractor()

	tests := []struct {
		text string
		want bool
	}{
		{"HDD 500GB搭載", true},
		{"hdd 1tbモデル", true},
		{"HDD 1TB + SSD 256GB デュアルストレージ", false},
		{"SSD 256GB", false},
		{"ストレージ記載なし", false},
	}

	for _, tt := range tests {
		attrs, _ := ex.Extract(tt.text)
		if attrs.SpinningDiskOnly != tt.want {
			t.Errorf("SpinningDiskOnly(%q) = %v, want %v", tt.text, attrs.SpinningDiskOnly, tt.want)
		}
	}
}

func TestExtractGPU(t *testing.T) {
	ex := NewJapaneseSpecExtractor()

	tests := []struct {
		text string
		want bool
	}{
		{"GeForce RTX 3060搭載ゲーミングPC", true},
		{"gtx 1650 laptop", true},
		{"Radeon RX 6600", true},
		{"Intel Arc A750", true},
		{"インテルUHDグラフィックス", false},
	}

	for _, tt := range tests {
		attrs, _ := ex.Extract(tt.text)
		if attrs.HasDiscreteGPU != tt.want {
			t.Errorf("HasDiscreteGPU(%q) = %v, want %v", tt.text, attrs.HasDiscreteGPU, tt.want)
		}
	}
}

func TestExtractCPU(t *testing.T) {
	ex := NewJapaneseSpecExtractor()

	tests := []struct {
		text      string
		wantModel string
		wantGen   int
		noGen     bool
		noModel   bool
	}{
		{text: "Core i5-8250U搭載", wantModel: "i5-8250U", wantGen: 8},
		{text: "第10世代 i7-10510U", wantModel: "i7-10510U", wantGen: 10},
		{text: "i3-6100", wantModel: "i3-6100", wantGen: 6},
		{text: "Ryzen 5 5600G搭載", wantModel: "Ryzen 5 5600G", noGen: true},
		{text: "Celeron N4020", noModel: true, noGen: true},
	}

	for _, tt := range tests {
		attrs, _ := ex.Extract(tt.text)
		if tt.noModel {
			if attrs.CPUModel != nil {
				t.Errorf("CPUModel(%q) = %q, want nil", tt.text, *attrs.CPUModel)
			}
			continue
		}
		if attrs.CPUModel == nil || *attrs.CPUModel != tt.wantModel {
			t.Errorf("CPUModel(%q) = %v, want %q", tt.text, attrs.CPUModel, tt.wantModel)
			continue
		}
		if tt.noGen {
			if attrs.CPUGeneration != nil {
				t.Errorf("CPUGeneration(%q) = %d, want nil", tt.text, *attrs.CPUGeneration)
			}
		} else if attrs.CPUGeneration == nil || *attrs.CPUGeneration != tt.wantGen {
			t.Errorf("CPUGeneration(%q) = %v, want %d", tt.text, attrs.CPUGeneration, tt.wantGen)
		}
	}
}

func TestClassifyDeviceType(t *testing.T) {
	ex := NewJapaneseSpecExtractor()

	tests := []struct {
		text string
		want entity.DeviceType
	}{
		{"中古ノートパソコン ThinkPad X280", entity.DeviceLaptop},
		{"レッツノート CF-SV8", entity.DeviceLaptop},
		{"デスクトップ OptiPlex 3070", entity.DeviceDesktop},
		{"一体型パソコン 21.5型", entity.DeviceDesktop},
		{"中古パソコン", entity.DeviceAny},
		{"ノート・デスクトップ両対応スタンド", entity.DeviceAny},
	}

	for _, tt := range tests {
		_, feats := ex.Extract(tt.text)
		if feats.DeviceType != tt.want {
			t.Errorf("DeviceType(%q) = %q, want %q", tt.text, feats.DeviceType, tt.want)
		}
	}
}

func TestExtractDeviceFeatures(t *testing.T) {
	ex := NewJapaneseSpecExtractor()

	_, feats := ex.Extract("ノートPC 15.6型 Webカメラ・テンキー付き")
	if !feats.HasCamera {
		t.Error("HasCamera = false, want true")
	}
	if !feats.HasNumericKeypad {
		t.Error("HasNumericKeypad = false, want true")
	}
	if feats.ScreenInches == nil || *feats.ScreenInches != 15.6 {
		t.Errorf("ScreenInches = %v, want 15.6", feats.ScreenInches)
	}

	_, feats = ex.Extract("13.3インチ モバイルノート")
	if feats.ScreenInches == nil || *feats.ScreenInches != 13.3 {
		t.Errorf("ScreenInches = %v, want 13.3", feats.ScreenInches)
	}
	if feats.HasCamera {
		t.Error("HasCamera = true, want false")
	}
}
