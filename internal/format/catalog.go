package format

// Format identifies a pixel or element format. Values form a closed, version-stable
// catalog; the numeric value of every entry is part of the declaration contract.
type Format uint32

const (
	Unknown Format = iota
	R32G32B32A32Typeless
	R32G32B32A32Float
	R32G32B32A32Uint
	R32G32B32A32Sint
	R32G32B32Typeless
	R32G32B32Float
	R32G32B32Uint
	R32G32B32Sint
	R16G16B16A16Typeless
	R16G16B16A16Float
	R16G16B16A16Unorm
	R16G16B16A16Uint
	R16G16B16A16Snorm
	R16G16B16A16Sint
	R32G32Typeless
	R32G32Float
	R32G32Uint
	R32G32Sint
	R32G8X24Typeless
	D32FloatS8X24Uint
	R32FloatX8X24Typeless
	X32TypelessG8X24Uint
	R10G10B10A2Typeless
	R10G10B10A2Unorm
	R10G10B10A2Uint
	R11G11B10Float
	R8G8B8A8Typeless
	R8G8B8A8Unorm
	R8G8B8A8UnormSRGB
	R8G8B8A8Uint
	R8G8B8A8Snorm
	R8G8B8A8Sint
	R16G16Typeless
	R16G16Float
	R16G16Unorm
	R16G16Uint
	R16G16Snorm
	R16G16Sint
	R32Typeless
	D32Float
	R32Float
	R32Uint
	R32Sint
	R24G8Typeless
	D24UnormS8Uint
	R24UnormX8Typeless
	X24TypelessG8Uint
	R8G8Typeless
	R8G8Unorm
	R8G8Uint
	R8G8Snorm
	R8G8Sint
	R16Typeless
	R16Float
	D16Unorm
	R16Unorm
	R16Uint
	R16Snorm
	R16Sint
	R8Typeless
	R8Unorm
	R8Uint
	R8Snorm
	R8Sint
	A8Unorm
	R1Unorm
	R9G9B9E5SharedExp
	R8G8B8G8Unorm
	G8R8G8B8Unorm
	BC1Typeless
	BC1Unorm
	BC1UnormSRGB
	BC2Typeless
	BC2Unorm
	BC2UnormSRGB
	BC3Typeless
	BC3Unorm
	BC3UnormSRGB
	BC4Typeless
	BC4Unorm
	BC4Snorm
	BC5Typeless
	BC5Unorm
	BC5Snorm
	B5G6R5Unorm
	B5G5R5A1Unorm
	B8G8R8A8Unorm
	B8G8R8X8Unorm
	R10G10B10XRBiasA2Unorm
	B8G8R8A8Typeless
	B8G8R8A8UnormSRGB
	B8G8R8X8Typeless
	B8G8R8X8UnormSRGB
	BC6HTypeless
	BC6HUF16
	BC6HSF16
	BC7Typeless
	BC7Unorm
	BC7UnormSRGB
	AYUV
	Y410
	Y416
	NV12
	P010
	P016
	Opaque420
	YUY2
	Y210
	Y216
	NV11
	AI44
	IA44
	P8
	A8P8
	B4G4R4A4Unorm

	// Count is the number of formats in the catalog.
	Count
)

var names = [Count]string{
	Unknown:                "UNKNOWN",
	R32G32B32A32Typeless:   "R32G32B32A32_TYPELESS",
	R32G32B32A32Float:      "R32G32B32A32_FLOAT",
	R32G32B32A32Uint:       "R32G32B32A32_UINT",
	R32G32B32A32Sint:       "R32G32B32A32_SINT",
	R32G32B32Typeless:      "R32G32B32_TYPELESS",
	R32G32B32Float:         "R32G32B32_FLOAT",
	R32G32B32Uint:          "R32G32B32_UINT",
	R32G32B32Sint:          "R32G32B32_SINT",
	R16G16B16A16Typeless:   "R16G16B16A16_TYPELESS",
	R16G16B16A16Float:      "R16G16B16A16_FLOAT",
	R16G16B16A16Unorm:      "R16G16B16A16_UNORM",
	R16G16B16A16Uint:       "R16G16B16A16_UINT",
	R16G16B16A16Snorm:      "R16G16B16A16_SNORM",
	R16G16B16A16Sint:       "R16G16B16A16_SINT",
	R32G32Typeless:         "R32G32_TYPELESS",
	R32G32Float:            "R32G32_FLOAT",
	R32G32Uint:             "R32G32_UINT",
	R32G32Sint:             "R32G32_SINT",
	R32G8X24Typeless:       "R32G8X24_TYPELESS",
	D32FloatS8X24Uint:      "D32_FLOAT_S8X24_UINT",
	R32FloatX8X24Typeless:  "R32_FLOAT_X8X24_TYPELESS",
	X32TypelessG8X24Uint:   "X32_TYPELESS_G8X24_UINT",
	R10G10B10A2Typeless:    "R10G10B10A2_TYPELESS",
	R10G10B10A2Unorm:       "R10G10B10A2_UNORM",
	R10G10B10A2Uint:        "R10G10B10A2_UINT",
	R11G11B10Float:         "R11G11B10_FLOAT",
	R8G8B8A8Typeless:       "R8G8B8A8_TYPELESS",
	R8G8B8A8Unorm:          "R8G8B8A8_UNORM",
	R8G8B8A8UnormSRGB:      "R8G8B8A8_UNORM_SRGB",
	R8G8B8A8Uint:           "R8G8B8A8_UINT",
	R8G8B8A8Snorm:          "R8G8B8A8_SNORM",
	R8G8B8A8Sint:           "R8G8B8A8_SINT",
	R16G16Typeless:         "R16G16_TYPELESS",
	R16G16Float:            "R16G16_FLOAT",
	R16G16Unorm:            "R16G16_UNORM",
	R16G16Uint:             "R16G16_UINT",
	R16G16Snorm:            "R16G16_SNORM",
	R16G16Sint:             "R16G16_SINT",
	R32Typeless:            "R32_TYPELESS",
	D32Float:               "D32_FLOAT",
	R32Float:               "R32_FLOAT",
	R32Uint:                "R32_UINT",
	R32Sint:                "R32_SINT",
	R24G8Typeless:          "R24G8_TYPELESS",
	D24UnormS8Uint:         "D24_UNORM_S8_UINT",
	R24UnormX8Typeless:     "R24_UNORM_X8_TYPELESS",
	X24TypelessG8Uint:      "X24_TYPELESS_G8_UINT",
	R8G8Typeless:           "R8G8_TYPELESS",
	R8G8Unorm:              "R8G8_UNORM",
	R8G8Uint:               "R8G8_UINT",
	R8G8Snorm:              "R8G8_SNORM",
	R8G8Sint:               "R8G8_SINT",
	R16Typeless:            "R16_TYPELESS",
	R16Float:               "R16_FLOAT",
	D16Unorm:               "D16_UNORM",
	R16Unorm:               "R16_UNORM",
	R16Uint:                "R16_UINT",
	R16Snorm:               "R16_SNORM",
	R16Sint:                "R16_SINT",
	R8Typeless:             "R8_TYPELESS",
	R8Unorm:                "R8_UNORM",
	R8Uint:                 "R8_UINT",
	R8Snorm:                "R8_SNORM",
	R8Sint:                 "R8_SINT",
	A8Unorm:                "A8_UNORM",
	R1Unorm:                "R1_UNORM",
	R9G9B9E5SharedExp:      "R9G9B9E5_SHAREDEXP",
	R8G8B8G8Unorm:          "R8G8_B8G8_UNORM",
	G8R8G8B8Unorm:          "G8R8_G8B8_UNORM",
	BC1Typeless:            "BC1_TYPELESS",
	BC1Unorm:               "BC1_UNORM",
	BC1UnormSRGB:           "BC1_UNORM_SRGB",
	BC2Typeless:            "BC2_TYPELESS",
	BC2Unorm:               "BC2_UNORM",
	BC2UnormSRGB:           "BC2_UNORM_SRGB",
	BC3Typeless:            "BC3_TYPELESS",
	BC3Unorm:               "BC3_UNORM",
	BC3UnormSRGB:           "BC3_UNORM_SRGB",
	BC4Typeless:            "BC4_TYPELESS",
	BC4Unorm:               "BC4_UNORM",
	BC4Snorm:               "BC4_SNORM",
	BC5Typeless:            "BC5_TYPELESS",
	BC5Unorm:               "BC5_UNORM",
	BC5Snorm:               "BC5_SNORM",
	B5G6R5Unorm:            "B5G6R5_UNORM",
	B5G5R5A1Unorm:          "B5G5R5A1_UNORM",
	B8G8R8A8Unorm:          "B8G8R8A8_UNORM",
	B8G8R8X8Unorm:          "B8G8R8X8_UNORM",
	R10G10B10XRBiasA2Unorm: "R10G10B10_XR_BIAS_A2_UNORM",
	B8G8R8A8Typeless:       "B8G8R8A8_TYPELESS",
	B8G8R8A8UnormSRGB:      "B8G8R8A8_UNORM_SRGB",
	B8G8R8X8Typeless:       "B8G8R8X8_TYPELESS",
	B8G8R8X8UnormSRGB:      "B8G8R8X8_UNORM_SRGB",
	BC6HTypeless:           "BC6H_TYPELESS",
	BC6HUF16:               "BC6H_UF16",
	BC6HSF16:               "BC6H_SF16",
	BC7Typeless:            "BC7_TYPELESS",
	BC7Unorm:               "BC7_UNORM",
	BC7UnormSRGB:           "BC7_UNORM_SRGB",
	AYUV:                   "AYUV",
	Y410:                   "Y410",
	Y416:                   "Y416",
	NV12:                   "NV12",
	P010:                   "P010",
	P016:                   "P016",
	Opaque420:              "420_OPAQUE",
	YUY2:                   "YUY2",
	Y210:                   "Y210",
	Y216:                   "Y216",
	NV11:                   "NV11",
	AI44:                   "AI44",
	IA44:                   "IA44",
	P8:                     "P8",
	A8P8:                   "A8P8",
	B4G4R4A4Unorm:          "B4G4R4A4_UNORM",
}

// elementBytes is the size of one element. Block-compressed formats record the
// size of one block. Sub-byte, palettized and planar video formats have no
// fixed linear size and are recorded as 0.
var elementBytes = [Count]uint32{
	Unknown:                0,
	R32G32B32A32Typeless:   16,
	R32G32B32A32Float:      16,
	R32G32B32A32Uint:       16,
	R32G32B32A32Sint:       16,
	R32G32B32Typeless:      12,
	R32G32B32Float:         12,
	R32G32B32Uint:          12,
	R32G32B32Sint:          12,
	R16G16B16A16Typeless:   8,
	R16G16B16A16Float:      8,
	R16G16B16A16Unorm:      8,
	R16G16B16A16Uint:       8,
	R16G16B16A16Snorm:      8,
	R16G16B16A16Sint:       8,
	R32G32Typeless:         8,
	R32G32Float:            8,
	R32G32Uint:             8,
	R32G32Sint:             8,
	R32G8X24Typeless:       8,
	D32FloatS8X24Uint:      8,
	R32FloatX8X24Typeless:  8,
	X32TypelessG8X24Uint:   8,
	R10G10B10A2Typeless:    4,
	R10G10B10A2Unorm:       4,
	R10G10B10A2Uint:        4,
	R11G11B10Float:         4,
	R8G8B8A8Typeless:       4,
	R8G8B8A8Unorm:          4,
	R8G8B8A8UnormSRGB:      4,
	R8G8B8A8Uint:           4,
	R8G8B8A8Snorm:          4,
	R8G8B8A8Sint:           4,
	R16G16Typeless:         4,
	R16G16Float:            4,
	R16G16Unorm:            4,
	R16G16Uint:             4,
	R16G16Snorm:            4,
	R16G16Sint:             4,
	R32Typeless:            4,
	D32Float:               4,
	R32Float:               4,
	R32Uint:                4,
	R32Sint:                4,
	R24G8Typeless:          4,
	D24UnormS8Uint:         4,
	R24UnormX8Typeless:     4,
	X24TypelessG8Uint:      4,
	R8G8Typeless:           2,
	R8G8Unorm:              2,
	R8G8Uint:               2,
	R8G8Snorm:              2,
	R8G8Sint:               2,
	R16Typeless:            2,
	R16Float:               2,
	D16Unorm:               2,
	R16Unorm:               2,
	R16Uint:                2,
	R16Snorm:               2,
	R16Sint:                2,
	R8Typeless:             1,
	R8Unorm:                1,
	R8Uint:                 1,
	R8Snorm:                1,
	R8Sint:                 1,
	A8Unorm:                1,
	R1Unorm:                0,
	R9G9B9E5SharedExp:      4,
	R8G8B8G8Unorm:          2,
	G8R8G8B8Unorm:          2,
	BC1Typeless:            8,
	BC1Unorm:               8,
	BC1UnormSRGB:           8,
	BC2Typeless:            16,
	BC2Unorm:               16,
	BC2UnormSRGB:           16,
	BC3Typeless:            16,
	BC3Unorm:               16,
	BC3UnormSRGB:           16,
	BC4Typeless:            8,
	BC4Unorm:               8,
	BC4Snorm:               8,
	BC5Typeless:            16,
	BC5Unorm:               16,
	BC5Snorm:               16,
	B5G6R5Unorm:            2,
	B5G5R5A1Unorm:          2,
	B8G8R8A8Unorm:          4,
	B8G8R8X8Unorm:          4,
	R10G10B10XRBiasA2Unorm: 4,
	B8G8R8A8Typeless:       4,
	B8G8R8A8UnormSRGB:      4,
	B8G8R8X8Typeless:       4,
	B8G8R8X8UnormSRGB:      4,
	BC6HTypeless:           16,
	BC6HUF16:               16,
	BC6HSF16:               16,
	BC7Typeless:            16,
	BC7Unorm:               16,
	BC7UnormSRGB:           16,
	AYUV:                   0,
	Y410:                   0,
	Y416:                   0,
	NV12:                   0,
	P010:                   0,
	P016:                   0,
	Opaque420:              0,
	YUY2:                   0,
	Y210:                   0,
	Y216:                   0,
	NV11:                   0,
	AI44:                   0,
	IA44:                   0,
	P8:                     0,
	A8P8:                   0,
	B4G4R4A4Unorm:          2,
}
