package nn

import "errors"

var (
	// ErrInvalidLayer is returned for a non-positive neuron count or an
	// unknown activation.
	ErrInvalidLayer = errors.New("nn: invalid layer")

	// ErrArchitectureFrozen is returned by AppendLayer once the network has
	// been run or trained.
	ErrArchitectureFrozen = errors.New("nn: architecture is frozen")

	// ErrNoLayers is returned when training a network that has only its
	// input layer.
	ErrNoLayers = errors.New("nn: network has no trainable layers")

	// ErrInvalidEpochs is returned for a negative epoch count.
	ErrInvalidEpochs = errors.New("nn: invalid epoch count")

	// ErrUnknownActivation is returned by ParseActivation.
	ErrUnknownActivation = errors.New("nn: unknown activation")
)
