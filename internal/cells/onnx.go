package cells

import (
	"fmt"
	"image"
	"os"
	"sync"

	"board-cropper/internal/board"

	"gocv.io/x/gocv"
)

// ONNXClassifier runs an image classification model exported to ONNX.
// The model takes a 1×3×224×224 RGB tensor scaled to [0,1] and returns one
// score per label.
type ONNXClassifier struct {
	InputName  string
	OutputName string

	mu  sync.Mutex
	net gocv.Net
}

// NewONNXClassifier loads the model at modelPath.
func NewONNXClassifier(modelPath string) (*ONNXClassifier, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model not found: %w", err)
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load ONNX model %s", modelPath)
	}
	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &ONNXClassifier{
		InputName:  "input",
		OutputName: "output",
		net:        net,
	}, nil
}

// Classify implements Classifier. It is safe for concurrent use.
func (c *ONNXClassifier) Classify(cell image.Image) (board.Label, error) {
	mat, err := gocv.ImageToMatRGB(Preprocess(cell)) // BGR channel order
	if err != nil {
		return board.Empty, fmt.Errorf("failed to convert cell: %w", err)
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(InputSize, InputSize), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	c.mu.Lock()
	c.net.SetInput(blob, c.InputName)
	out := c.net.Forward(c.OutputName)
	c.mu.Unlock()
	defer out.Close()

	scores, err := out.DataPtrFloat32()
	if err != nil {
		return board.Empty, fmt.Errorf("failed to read scores: %w", err)
	}
	label := board.Label(argmax(scores))
	if !label.Valid() {
		return board.Empty, fmt.Errorf("model returned %d scores, class %d is not a label", len(scores), label)
	}
	return label, nil
}

// Close releases the network.
func (c *ONNXClassifier) Close() error {
	return c.net.Close()
}

func argmax(v []float32) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
