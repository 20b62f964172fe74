package pets

// Size define la categoría de tamaño de la mascota.
// No se valida: cualquier string enviado por el cliente se guarda tal cual.
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Pet representa una mascota registrada.
// El ID no es único: el sistema no lo verifica ni al crear ni al actualizar.
type Pet struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Age  float64 `json:"age" yaml:"age"`
	Size Size    `json:"size" yaml:"size" enums:"small,medium,large"`
}
