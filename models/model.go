package models

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimension = errors.New("dimension must be positive")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrEmptyBoxID       = errors.New("box id must not be empty")
	ErrDuplicateBoxID   = errors.New("duplicate box id")
)

// positive rejects NaN and infinities along with non-positive values.
func positive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// 托盘尺寸 (w 沿宽度, h 为堆叠高度, d 沿深度)
type Pallet struct {
	Width  float64 `json:"w" yaml:"w" msgpack:"w" binding:"required,gt=0"`
	Height float64 `json:"h" yaml:"h" msgpack:"h" binding:"required,gt=0"`
	Depth  float64 `json:"d" yaml:"d" msgpack:"d" binding:"required,gt=0"`
}

func (p Pallet) Volume() float64 {
	return p.Width * p.Height * p.Depth
}

func (p Pallet) Validate() error {
	if !positive(p.Width) || !positive(p.Height) || !positive(p.Depth) {
		return fmt.Errorf("pallet %gx%gx%g: %w", p.Width, p.Height, p.Depth, ErrInvalidDimension)
	}
	return nil
}

// 箱型, Qty 为剩余未放置数量
type BoxType struct {
	ID     string  `json:"id" yaml:"id" msgpack:"id" binding:"required"`
	Width  float64 `json:"w" yaml:"w" msgpack:"w" binding:"required,gt=0"`
	Height float64 `json:"h" yaml:"h" msgpack:"h" binding:"required,gt=0"`
	Depth  float64 `json:"d" yaml:"d" msgpack:"d" binding:"required,gt=0"`
	Qty    int     `json:"qty" yaml:"qty" msgpack:"qty" binding:"gte=0"`
}

func (b BoxType) Volume() float64 {
	return b.Width * b.Height * b.Depth
}

func (b BoxType) Validate() error {
	if b.ID == "" {
		return ErrEmptyBoxID
	}
	if !positive(b.Width) || !positive(b.Height) || !positive(b.Depth) {
		return fmt.Errorf("box %s %gx%gx%g: %w", b.ID, b.Width, b.Height, b.Depth, ErrInvalidDimension)
	}
	if b.Qty < 0 {
		return fmt.Errorf("box %s qty %d: %w", b.ID, b.Qty, ErrNegativeQuantity)
	}
	return nil
}

// ValidateCatalog checks every box type and rejects repeated ids.
func ValidateCatalog(boxes []BoxType) error {
	seen := make(map[string]struct{}, len(boxes))
	for _, b := range boxes {
		if err := b.Validate(); err != nil {
			return err
		}
		if _, ok := seen[b.ID]; ok {
			return fmt.Errorf("box %s: %w", b.ID, ErrDuplicateBoxID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

// CopyCatalog returns an independent copy so an attempt can decrement quantities freely.
func CopyCatalog(boxes []BoxType) []BoxType {
	out := make([]BoxType, len(boxes))
	copy(out, boxes)
	return out
}

// 轴对齐摆放方向
type Orientation struct {
	Width  float64 `json:"w" yaml:"w" msgpack:"w"`
	Height float64 `json:"h" yaml:"h" msgpack:"h"`
	Depth  float64 `json:"d" yaml:"d" msgpack:"d"`
}

func (o Orientation) Pallet() Pallet {
	return Pallet{Width: o.Width, Height: o.Height, Depth: o.Depth}
}

// 候选层高, Score 越小越好
type LayerCandidate struct {
	Height float64 `json:"height" yaml:"height" msgpack:"height"`
	Score  float64 `json:"score" yaml:"score" msgpack:"score"`
}

// 已放置的箱子, (X, Y, Z) 为锚点, Y 为堆叠方向
type PlacedBox struct {
	BoxID  string  `json:"boxId" yaml:"boxId" msgpack:"boxId"`
	Width  float64 `json:"w" yaml:"w" msgpack:"w"`
	Height float64 `json:"h" yaml:"h" msgpack:"h"`
	Depth  float64 `json:"d" yaml:"d" msgpack:"d"`
	X      float64 `json:"x" yaml:"x" msgpack:"x"`
	Y      float64 `json:"y" yaml:"y" msgpack:"y"`
	Z      float64 `json:"z" yaml:"z" msgpack:"z"`
}

func (p PlacedBox) Volume() float64 {
	return p.Width * p.Height * p.Depth
}

// 一层的统计
type LayerStats struct {
	Elevation float64 `json:"elevation" yaml:"elevation" msgpack:"elevation"`
	Height    float64 `json:"height" yaml:"height" msgpack:"height"`
	Count     int     `json:"count" yaml:"count" msgpack:"count"`
}

// 单次 (托盘方向, 层高) 尝试的结果
type PackingResult struct {
	LayerHeight float64      `json:"layerHeight" yaml:"layerHeight" msgpack:"layerHeight"`
	Placements  []PlacedBox  `json:"placements" yaml:"placements" msgpack:"placements"`
	Layers      []LayerStats `json:"layers" yaml:"layers" msgpack:"layers"`
	Remaining   []BoxType    `json:"remaining" yaml:"remaining" msgpack:"remaining"`
	UsedVolume  float64      `json:"usedVolume" yaml:"usedVolume" msgpack:"usedVolume"`
	Utilization float64      `json:"utilization" yaml:"utilization" msgpack:"utilization"`
}

// 每次尝试的简报, 用于图表
type CandidateReport struct {
	Orientation Orientation `json:"orientation" yaml:"orientation" msgpack:"orientation"`
	LayerHeight float64     `json:"layerHeight" yaml:"layerHeight" msgpack:"layerHeight"`
	Score       float64     `json:"score" yaml:"score" msgpack:"score"`
	Layers      int         `json:"layers" yaml:"layers" msgpack:"layers"`
	Placed      int         `json:"placed" yaml:"placed" msgpack:"placed"`
	Utilization float64     `json:"utilization" yaml:"utilization" msgpack:"utilization"`
}

// 全局最优解
type Solution struct {
	RunID      string            `json:"runId" yaml:"runId" msgpack:"runId"`
	Pallet     Pallet            `json:"pallet" yaml:"pallet" msgpack:"pallet"`
	Oriented   Pallet            `json:"orientedPallet" yaml:"orientedPallet" msgpack:"orientedPallet"`
	Result     PackingResult     `json:"result" yaml:"result" msgpack:"result"`
	Candidates []CandidateReport `json:"candidates" yaml:"candidates" msgpack:"candidates"`
}
