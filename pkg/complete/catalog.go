package complete

// Keywords is the reserved-word catalog, searched first.
var Keywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while", "true", "false", "null",
}

// Methods is the common-method catalog, searched second.
var Methods = []string{
	"System.out.println", "System.out.print", "toString", "equals", "hashCode",
	"length", "size", "isEmpty", "contains", "add", "remove", "clear",
	"substring", "indexOf", "charAt", "split", "trim", "toLowerCase", "toUpperCase",
}

// APITypes is the known API type-name catalog, searched last. These are the
// modding API types the editor completes alongside the core language.
var APITypes = []string{
	"Block", "Item", "Entity", "Player", "World", "ItemStack", "BlockPos",
	"Material", "EntityPlayer", "TileEntity", "Recipe", "CreativeTabs",
	"EnumFacing", "IBlockState", "NBTTagCompound", "ResourceLocation",
}
