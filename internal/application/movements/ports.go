package movements

// Notifier recibe el resultado de cada operación del store. La cola de
// notificaciones del panel lo implementa; el store nunca depende de ella
// directamente (la dependencia va solo en esta dirección).
type Notifier interface {
	Success(message string) string
	Error(message string) string
}

// LocationResolver traduce el ID de un centro de distribución a su nombre
// visible. Un ID sin coincidencia se devuelve tal cual.
type LocationResolver interface {
	ResolveName(id string) string
}
