package modem

var NewManagerWithObjects = newManager
